package playmovies

import (
	"context"
	"strconv"
)

// OrdersListCall lists orders. Create it with AccountsService.OrdersList.
type OrdersListCall struct {
	c *call
}

// AccountID replaces the account the orders are listed for.
func (c *OrdersListCall) AccountID(accountID string) *OrdersListCall {
	c.c.set("accountId", accountID)
	return c
}

// AddVideoIDs filters by video ids.
func (c *OrdersListCall) AddVideoIDs(videoIDs ...string) *OrdersListCall {
	c.c.add("videoIds", videoIDs...)
	return c
}

// AddStudioNames filters by studio names.
func (c *OrdersListCall) AddStudioNames(studioNames ...string) *OrdersListCall {
	c.c.add("studioNames", studioNames...)
	return c
}

// AddStatus filters by order status, e.g. "STATUS_APPROVED".
func (c *OrdersListCall) AddStatus(status ...string) *OrdersListCall {
	c.c.add("status", status...)
	return c
}

// AddPphNames filters by preferred partner hub names.
func (c *OrdersListCall) AddPphNames(pphNames ...string) *OrdersListCall {
	c.c.add("pphNames", pphNames...)
	return c
}

// PageToken sets the token of the page to return.
func (c *OrdersListCall) PageToken(pageToken string) *OrdersListCall {
	c.c.set("pageToken", pageToken)
	return c
}

// PageSize sets the maximum number of orders per page.
func (c *OrdersListCall) PageSize(pageSize int32) *OrdersListCall {
	c.c.set("pageSize", strconv.FormatInt(int64(pageSize), 10))
	return c
}

// Name filters by a case-insensitive title substring.
func (c *OrdersListCall) Name(name string) *OrdersListCall {
	c.c.set("name", name)
	return c
}

// CustomID filters by the partner's custom id.
func (c *OrdersListCall) CustomID(customID string) *OrdersListCall {
	c.c.set("customId", customID)
	return c
}

// Param sets an additional query parameter.
func (c *OrdersListCall) Param(name, value string) *OrdersListCall {
	c.c.param(name, value)
	return c
}

// Delegate sets the delegate observing this call.
func (c *OrdersListCall) Delegate(d Delegate) *OrdersListCall {
	c.c.delegate = d
	return c
}

// AddScope adds a scope the token must carry.
func (c *OrdersListCall) AddScope(scope Scope) *OrdersListCall {
	c.c.addScopes(scope)
	return c
}

// AddScopes adds several scopes the token must carry.
func (c *OrdersListCall) AddScopes(scopes ...Scope) *OrdersListCall {
	c.c.addScopes(scopes...)
	return c
}

// ClearScopes removes every scope, including the default one.
func (c *OrdersListCall) ClearScopes() *OrdersListCall {
	c.c.clearScopes()
	return c
}

// Do executes the call.
func (c *OrdersListCall) Do(ctx context.Context) (*ListOrdersResponse, error) {
	return doCall[ListOrdersResponse](ctx, c.c)
}

// Pages calls f for each page of results, starting at the page set with
// PageToken. Iteration stops at the first error, including one returned by f.
func (c *OrdersListCall) Pages(ctx context.Context, f func(*ListOrdersResponse) error) error {
	return pages[ListOrdersResponse](ctx, c.c, f)
}

// OrdersGetCall gets one order. Create it with AccountsService.OrdersGet.
type OrdersGetCall struct {
	c *call
}

// AccountID replaces the account the order belongs to.
func (c *OrdersGetCall) AccountID(accountID string) *OrdersGetCall {
	c.c.set("accountId", accountID)
	return c
}

// OrderID replaces the order to get.
func (c *OrdersGetCall) OrderID(orderID string) *OrdersGetCall {
	c.c.set("orderId", orderID)
	return c
}

// Param sets an additional query parameter.
func (c *OrdersGetCall) Param(name, value string) *OrdersGetCall {
	c.c.param(name, value)
	return c
}

// Delegate sets the delegate observing this call.
func (c *OrdersGetCall) Delegate(d Delegate) *OrdersGetCall {
	c.c.delegate = d
	return c
}

// AddScope adds a scope the token must carry.
func (c *OrdersGetCall) AddScope(scope Scope) *OrdersGetCall {
	c.c.addScopes(scope)
	return c
}

// AddScopes adds several scopes the token must carry.
func (c *OrdersGetCall) AddScopes(scopes ...Scope) *OrdersGetCall {
	c.c.addScopes(scopes...)
	return c
}

// ClearScopes removes every scope, including the default one.
func (c *OrdersGetCall) ClearScopes() *OrdersGetCall {
	c.c.clearScopes()
	return c
}

// Do executes the call.
func (c *OrdersGetCall) Do(ctx context.Context) (*Order, error) {
	return doCall[Order](ctx, c.c)
}
