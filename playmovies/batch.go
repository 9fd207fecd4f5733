package playmovies

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds the concurrent calls of a batch.
const DefaultBatchConcurrency = 10

// StoreInfoError is the failure of one lookup in a batch.
type StoreInfoError struct {
	Key StoreInfoKey
	Err error
}

func (e StoreInfoError) Error() string {
	return fmt.Sprintf("store info %s/%s: %v", e.Key.VideoID, e.Key.Country, e.Err)
}

func (e StoreInfoError) Unwrap() error {
	return e.Err
}

// BatchStoreInfosResult holds the outcome of BatchStoreInfosCountryGet.
type BatchStoreInfosResult struct {
	Requested int
	// StoreInfos is in request order. Failed lookups leave a nil entry.
	StoreInfos []*StoreInfo
	// Failed is in request order.
	Failed []StoreInfoError
}

// Err joins every failure, or returns nil if all lookups succeeded.
func (r BatchStoreInfosResult) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	errs := make([]error, len(r.Failed))
	for i, f := range r.Failed {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// BatchStoreInfosCountryGet fetches the store info of every key concurrently.
// A failed lookup does not stop the others. configure, if non-nil, is applied
// to each call before it runs.
func (s *Service) BatchStoreInfosCountryGet(ctx context.Context, accountID string, keys []StoreInfoKey, configure func(*StoreInfosCountryGetCall)) BatchStoreInfosResult {
	result := BatchStoreInfosResult{
		Requested:  len(keys),
		StoreInfos: make([]*StoreInfo, len(keys)),
	}
	if len(keys) == 0 {
		return result
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultBatchConcurrency)

	errs := make([]error, len(keys))
	accounts := s.Accounts()

	for i, key := range keys {
		g.Go(func() error {
			call := accounts.StoreInfosCountryGet(accountID, key.VideoID, key.Country)
			if configure != nil {
				configure(call)
			}

			info, err := call.Do(ctx)
			if err != nil {
				s.logger.Warn().
					Err(err).
					Str("video_id", key.VideoID).
					Str("country", key.Country).
					Msg("Failed to get store info")
				errs[i] = err
				return nil
			}

			result.StoreInfos[i] = info
			return nil
		})
	}

	_ = g.Wait()

	for i, err := range errs {
		if err != nil {
			result.Failed = append(result.Failed, StoreInfoError{Key: keys[i], Err: err})
		}
	}

	return result
}
