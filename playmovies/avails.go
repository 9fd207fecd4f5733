package playmovies

import (
	"context"
	"strconv"
)

// AvailsListCall lists avails. Create it with AccountsService.AvailsList.
type AvailsListCall struct {
	c *call
}

// AccountID replaces the account the call is made for.
func (c *AvailsListCall) AccountID(accountID string) *AvailsListCall {
	c.c.set("accountId", accountID)
	return c
}

// AddVideoIDs filters by video ids.
func (c *AvailsListCall) AddVideoIDs(videoIDs ...string) *AvailsListCall {
	c.c.add("videoIds", videoIDs...)
	return c
}

// Title filters by a case-insensitive title substring.
func (c *AvailsListCall) Title(title string) *AvailsListCall {
	c.c.set("title", title)
	return c
}

// AddTerritories filters by ISO 3166-1 alpha-2 territory codes.
func (c *AvailsListCall) AddTerritories(territories ...string) *AvailsListCall {
	c.c.add("territories", territories...)
	return c
}

// AddStudioNames filters by studio names.
func (c *AvailsListCall) AddStudioNames(studioNames ...string) *AvailsListCall {
	c.c.add("studioNames", studioNames...)
	return c
}

// AddPphNames filters by preferred partner hub names.
func (c *AvailsListCall) AddPphNames(pphNames ...string) *AvailsListCall {
	c.c.add("pphNames", pphNames...)
	return c
}

// PageToken sets the token of the page to return.
func (c *AvailsListCall) PageToken(pageToken string) *AvailsListCall {
	c.c.set("pageToken", pageToken)
	return c
}

// PageSize sets the maximum number of results per page.
func (c *AvailsListCall) PageSize(pageSize int32) *AvailsListCall {
	c.c.set("pageSize", strconv.FormatInt(int64(pageSize), 10))
	return c
}

// AddAltIDs filters by partner alt ids.
func (c *AvailsListCall) AddAltIDs(altIDs ...string) *AvailsListCall {
	c.c.add("altIds", altIDs...)
	return c
}

// AltID filters by a single partner alt id.
func (c *AvailsListCall) AltID(altID string) *AvailsListCall {
	c.c.set("altId", altID)
	return c
}

// Param sets an additional query parameter.
func (c *AvailsListCall) Param(name, value string) *AvailsListCall {
	c.c.param(name, value)
	return c
}

// Delegate sets the delegate observing this call.
func (c *AvailsListCall) Delegate(d Delegate) *AvailsListCall {
	c.c.delegate = d
	return c
}

// AddScope adds a scope the token must carry.
func (c *AvailsListCall) AddScope(scope Scope) *AvailsListCall {
	c.c.addScopes(scope)
	return c
}

// AddScopes adds several scopes the token must carry.
func (c *AvailsListCall) AddScopes(scopes ...Scope) *AvailsListCall {
	c.c.addScopes(scopes...)
	return c
}

// ClearScopes removes every scope, including the default one.
func (c *AvailsListCall) ClearScopes() *AvailsListCall {
	c.c.clearScopes()
	return c
}

// Do executes the call.
func (c *AvailsListCall) Do(ctx context.Context) (*ListAvailsResponse, error) {
	return doCall[ListAvailsResponse](ctx, c.c)
}

// Pages calls f for each page of results.
func (c *AvailsListCall) Pages(ctx context.Context, f func(*ListAvailsResponse) error) error {
	return pages[ListAvailsResponse](ctx, c.c, f)
}

// AvailsGetCall gets one avail. Create it with AccountsService.AvailsGet.
type AvailsGetCall struct {
	c *call
}

// AccountID replaces the account the call is made for.
func (c *AvailsGetCall) AccountID(accountID string) *AvailsGetCall {
	c.c.set("accountId", accountID)
	return c
}

// AvailID replaces the avail to get.
func (c *AvailsGetCall) AvailID(availID string) *AvailsGetCall {
	c.c.set("availId", availID)
	return c
}

// Param sets an additional query parameter.
func (c *AvailsGetCall) Param(name, value string) *AvailsGetCall {
	c.c.param(name, value)
	return c
}

// Delegate sets the delegate observing this call.
func (c *AvailsGetCall) Delegate(d Delegate) *AvailsGetCall {
	c.c.delegate = d
	return c
}

// AddScope adds a scope the token must carry.
func (c *AvailsGetCall) AddScope(scope Scope) *AvailsGetCall {
	c.c.addScopes(scope)
	return c
}

// AddScopes adds several scopes the token must carry.
func (c *AvailsGetCall) AddScopes(scopes ...Scope) *AvailsGetCall {
	c.c.addScopes(scopes...)
	return c
}

// ClearScopes removes every scope, including the default one.
func (c *AvailsGetCall) ClearScopes() *AvailsGetCall {
	c.c.clearScopes()
	return c
}

// Do executes the call.
func (c *AvailsGetCall) Do(ctx context.Context) (*Avail, error) {
	return doCall[Avail](ctx, c.c)
}
