package playmovies

// AccountsService creates calls for account-scoped resources. Creating a
// call performs no I/O.
type AccountsService struct {
	s *Service
}

// OrdersList lists the orders of an account.
func (r *AccountsService) OrdersList(accountID string) *OrdersListCall {
	c := &OrdersListCall{c: newCall(r.s, ordersListMethod)}
	c.c.set("accountId", accountID)
	return c
}

// OrdersGet gets one order.
func (r *AccountsService) OrdersGet(accountID, orderID string) *OrdersGetCall {
	c := &OrdersGetCall{c: newCall(r.s, ordersGetMethod)}
	c.c.set("accountId", accountID)
	c.c.set("orderId", orderID)
	return c
}

// AvailsList lists the avails of an account.
func (r *AccountsService) AvailsList(accountID string) *AvailsListCall {
	c := &AvailsListCall{c: newCall(r.s, availsListMethod)}
	c.c.set("accountId", accountID)
	return c
}

// AvailsGet gets one avail.
func (r *AccountsService) AvailsGet(accountID, availID string) *AvailsGetCall {
	c := &AvailsGetCall{c: newCall(r.s, availsGetMethod)}
	c.c.set("accountId", accountID)
	c.c.set("availId", availID)
	return c
}

// StoreInfosCountryGet gets the store info of one video in one country.
func (r *AccountsService) StoreInfosCountryGet(accountID, videoID, country string) *StoreInfosCountryGetCall {
	c := &StoreInfosCountryGetCall{c: newCall(r.s, storeInfosCountryGetMethod)}
	c.c.set("accountId", accountID)
	c.c.set("videoId", videoID)
	c.c.set("country", country)
	return c
}

// StoreInfosList lists the store infos of an account.
func (r *AccountsService) StoreInfosList(accountID string) *StoreInfosListCall {
	c := &StoreInfosListCall{c: newCall(r.s, storeInfosListMethod)}
	c.c.set("accountId", accountID)
	return c
}
