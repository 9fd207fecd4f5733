package playmovies

import (
	"context"
	"strconv"
)

// StoreInfosListCall lists store infos. Create it with
// AccountsService.StoreInfosList.
type StoreInfosListCall struct {
	c *call
}

// AccountID replaces the account the call is made for.
func (c *StoreInfosListCall) AccountID(accountID string) *StoreInfosListCall {
	c.c.set("accountId", accountID)
	return c
}

// AddVideoIDs filters by video ids.
func (c *StoreInfosListCall) AddVideoIDs(videoIDs ...string) *StoreInfosListCall {
	c.c.add("videoIds", videoIDs...)
	return c
}

// VideoID filters by a single video id.
func (c *StoreInfosListCall) VideoID(videoID string) *StoreInfosListCall {
	c.c.set("videoId", videoID)
	return c
}

// AddStudioNames filters by studio names.
func (c *StoreInfosListCall) AddStudioNames(studioNames ...string) *StoreInfosListCall {
	c.c.add("studioNames", studioNames...)
	return c
}

// AddSeasonIDs filters by season ids.
func (c *StoreInfosListCall) AddSeasonIDs(seasonIDs ...string) *StoreInfosListCall {
	c.c.add("seasonIds", seasonIDs...)
	return c
}

// AddPphNames filters by preferred partner hub names.
func (c *StoreInfosListCall) AddPphNames(pphNames ...string) *StoreInfosListCall {
	c.c.add("pphNames", pphNames...)
	return c
}

// PageToken sets the token of the page to return.
func (c *StoreInfosListCall) PageToken(pageToken string) *StoreInfosListCall {
	c.c.set("pageToken", pageToken)
	return c
}

// PageSize sets the maximum number of results per page.
func (c *StoreInfosListCall) PageSize(pageSize int32) *StoreInfosListCall {
	c.c.set("pageSize", strconv.FormatInt(int64(pageSize), 10))
	return c
}

// Name filters by a case-insensitive title substring.
func (c *StoreInfosListCall) Name(name string) *StoreInfosListCall {
	c.c.set("name", name)
	return c
}

// AddMids filters by Knowledge Graph ids.
func (c *StoreInfosListCall) AddMids(mids ...string) *StoreInfosListCall {
	c.c.add("mids", mids...)
	return c
}

// AddCountries filters by ISO 3166-1 alpha-2 country codes.
func (c *StoreInfosListCall) AddCountries(countries ...string) *StoreInfosListCall {
	c.c.add("countries", countries...)
	return c
}

// Param sets an additional query parameter.
func (c *StoreInfosListCall) Param(name, value string) *StoreInfosListCall {
	c.c.param(name, value)
	return c
}

// Delegate sets the delegate observing this call.
func (c *StoreInfosListCall) Delegate(d Delegate) *StoreInfosListCall {
	c.c.delegate = d
	return c
}

// AddScope adds a scope the token must carry.
func (c *StoreInfosListCall) AddScope(scope Scope) *StoreInfosListCall {
	c.c.addScopes(scope)
	return c
}

// AddScopes adds several scopes the token must carry.
func (c *StoreInfosListCall) AddScopes(scopes ...Scope) *StoreInfosListCall {
	c.c.addScopes(scopes...)
	return c
}

// ClearScopes removes every scope, including the default one.
func (c *StoreInfosListCall) ClearScopes() *StoreInfosListCall {
	c.c.clearScopes()
	return c
}

// Do executes the call.
func (c *StoreInfosListCall) Do(ctx context.Context) (*ListStoreInfosResponse, error) {
	return doCall[ListStoreInfosResponse](ctx, c.c)
}

// Pages calls f for each page of results.
func (c *StoreInfosListCall) Pages(ctx context.Context, f func(*ListStoreInfosResponse) error) error {
	return pages[ListStoreInfosResponse](ctx, c.c, f)
}

// StoreInfosCountryGetCall gets the store info of one video in one country.
// Create it with AccountsService.StoreInfosCountryGet.
type StoreInfosCountryGetCall struct {
	c *call
}

// AccountID replaces the account the call is made for.
func (c *StoreInfosCountryGetCall) AccountID(accountID string) *StoreInfosCountryGetCall {
	c.c.set("accountId", accountID)
	return c
}

// VideoID replaces the video of the store info to get.
func (c *StoreInfosCountryGetCall) VideoID(videoID string) *StoreInfosCountryGetCall {
	c.c.set("videoId", videoID)
	return c
}

// Country replaces the country of the store info to get.
func (c *StoreInfosCountryGetCall) Country(country string) *StoreInfosCountryGetCall {
	c.c.set("country", country)
	return c
}

// Param sets an additional query parameter.
func (c *StoreInfosCountryGetCall) Param(name, value string) *StoreInfosCountryGetCall {
	c.c.param(name, value)
	return c
}

// Delegate sets the delegate observing this call.
func (c *StoreInfosCountryGetCall) Delegate(d Delegate) *StoreInfosCountryGetCall {
	c.c.delegate = d
	return c
}

// AddScope adds a scope the token must carry.
func (c *StoreInfosCountryGetCall) AddScope(scope Scope) *StoreInfosCountryGetCall {
	c.c.addScopes(scope)
	return c
}

// AddScopes adds several scopes the token must carry.
func (c *StoreInfosCountryGetCall) AddScopes(scopes ...Scope) *StoreInfosCountryGetCall {
	c.c.addScopes(scopes...)
	return c
}

// ClearScopes removes every scope, including the default one.
func (c *StoreInfosCountryGetCall) ClearScopes() *StoreInfosCountryGetCall {
	c.c.clearScopes()
	return c
}

// Do executes the call.
func (c *StoreInfosCountryGetCall) Do(ctx context.Context) (*StoreInfo, error) {
	return doCall[StoreInfo](ctx, c.c)
}
