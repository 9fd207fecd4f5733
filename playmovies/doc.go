// Package playmovies provides a client for the Google Play Movies Partner API.
//
// The API exposes read-only views of a partner account: orders (legacy
// order-based delivery status), avails (EMA 1.6b availability windows) and
// store infos (per-country playable assets).
//
// # Architecture
//
//   - Service: the shared hub holding the HTTP client, token provider and
//     configuration (user agent, base and root paths)
//   - AccountsService: factories for the six API methods
//   - Call builders: accumulate optional parameters, then execute once via Do
//   - Delegate: per-call hook deciding retries and observing each step
//   - Errors: typed errors for every terminal failure
//
// # Usage
//
//	svc, err := playmovies.New(http.DefaultClient, auth.NewGoogleProvider(logger),
//		playmovies.WithLogger(logger),
//		playmovies.WithDefaultDelegate(func() playmovies.Delegate {
//			return playmovies.NewBackoffDelegate(3)
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	order, err := svc.Accounts().OrdersGet("A1", "O1").Do(ctx)
//	if err != nil {
//		var badReq *playmovies.BadRequestError
//		if errors.As(err, &badReq) && badReq.IsNotFound() {
//			// handle missing order
//		}
//	}
//
// List methods accept repeatable filters and support pagination:
//
//	err = svc.Accounts().AvailsList("A1").
//		AddTerritories("US", "FR").
//		PageSize(50).
//		Pages(ctx, func(page *playmovies.ListAvailsResponse) error {
//			for _, a := range page.Avails {
//				fmt.Println(*a.AvailID)
//			}
//			return nil
//		})
//
// # Retries
//
// A call never retries on its own. Retries are decided by the call's
// Delegate, and a delegate that always retries loops until the context is
// done. BackoffDelegate provides bounded exponential back-off; Metrics wraps
// any delegate with Prometheus instrumentation.
package playmovies
