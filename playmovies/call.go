package playmovies

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// apiMethod describes one API method: its id, path template and the
// parameters it owns, in declaration order.
type apiMethod struct {
	id          string
	path        string
	pathParams  []string
	queryParams []string
}

// reserved returns every parameter name an additional parameter must not use.
func (m *apiMethod) reserved() []string {
	names := make([]string, 0, 1+len(m.pathParams)+len(m.queryParams))
	names = append(names, "alt")
	names = append(names, m.pathParams...)
	return append(names, m.queryParams...)
}

var (
	ordersListMethod = &apiMethod{
		id:          "playmoviespartner.accounts.orders.list",
		path:        "v1/accounts/{accountId}/orders",
		pathParams:  []string{"accountId"},
		queryParams: []string{"videoIds", "studioNames", "status", "pphNames", "pageToken", "pageSize", "name", "customId"},
	}
	ordersGetMethod = &apiMethod{
		id:         "playmoviespartner.accounts.orders.get",
		path:       "v1/accounts/{accountId}/orders/{orderId}",
		pathParams: []string{"accountId", "orderId"},
	}
	availsListMethod = &apiMethod{
		id:          "playmoviespartner.accounts.avails.list",
		path:        "v1/accounts/{accountId}/avails",
		pathParams:  []string{"accountId"},
		queryParams: []string{"videoIds", "title", "territories", "studioNames", "pphNames", "pageToken", "pageSize", "altIds", "altId"},
	}
	availsGetMethod = &apiMethod{
		id:         "playmoviespartner.accounts.avails.get",
		path:       "v1/accounts/{accountId}/avails/{availId}",
		pathParams: []string{"accountId", "availId"},
	}
	storeInfosCountryGetMethod = &apiMethod{
		id:         "playmoviespartner.accounts.storeInfos.country.get",
		path:       "v1/accounts/{accountId}/storeInfos/{videoId}/country/{country}",
		pathParams: []string{"accountId", "videoId", "country"},
	}
	storeInfosListMethod = &apiMethod{
		id:          "playmoviespartner.accounts.storeInfos.list",
		path:        "v1/accounts/{accountId}/storeInfos",
		pathParams:  []string{"accountId"},
		queryParams: []string{"videoIds", "videoId", "studioNames", "seasonIds", "pphNames", "pageToken", "pageSize", "name", "mids", "countries"},
	}
)

// call is the state shared by every call builder.
type call struct {
	s      *Service
	method *apiMethod

	values map[string][]string
	extra  params

	scopes         map[string]struct{}
	scopesExplicit bool

	delegate Delegate
	consumed bool
}

func newCall(s *Service, method *apiMethod) *call {
	return &call{
		s:      s,
		method: method,
		values: make(map[string][]string),
		scopes: make(map[string]struct{}),
	}
}

func (c *call) set(name, value string) {
	c.values[name] = []string{value}
}

func (c *call) add(name string, values ...string) {
	c.values[name] = append(c.values[name], values...)
}

func (c *call) param(name, value string) {
	for i := range c.extra {
		if c.extra[i].name == name {
			c.extra[i].value = value
			return
		}
	}
	c.extra.push(name, value)
}

// addScopes with no scopes leaves the default scope in effect.
func (c *call) addScopes(scopes ...Scope) {
	if len(scopes) == 0 {
		return
	}
	for _, scope := range scopes {
		c.scopes[string(scope)] = struct{}{}
	}
	c.scopesExplicit = true
}

func (c *call) clearScopes() {
	clear(c.scopes)
	c.scopesExplicit = true
}

// effectiveScopes returns the scopes a token is requested for, sorted.
func (c *call) effectiveScopes() []string {
	if !c.scopesExplicit {
		return []string{string(DefaultScope)}
	}
	scopes := make([]string, 0, len(c.scopes))
	for scope := range c.scopes {
		scopes = append(scopes, scope)
	}
	slices.Sort(scopes)
	return scopes
}

// buildParams assembles path parameters, declared query parameters,
// additional parameters and alt=json, in that order.
func (c *call) buildParams() params {
	p := make(params, 0, len(c.method.pathParams)+len(c.method.queryParams)+len(c.extra)+1)
	for _, name := range c.method.pathParams {
		for _, v := range c.values[name] {
			p.push(name, v)
		}
	}
	for _, name := range c.method.queryParams {
		for _, v := range c.values[name] {
			p.push(name, v)
		}
	}
	p = append(p, c.extra...)
	p.push("alt", "json")
	return p
}

// clone returns an unexecuted copy of c.
func (c *call) clone() *call {
	cc := &call{
		s:              c.s,
		method:         c.method,
		values:         make(map[string][]string, len(c.values)),
		extra:          slices.Clone(c.extra),
		scopes:         make(map[string]struct{}, len(c.scopes)),
		scopesExplicit: c.scopesExplicit,
		delegate:       c.delegate,
	}
	for k, v := range c.values {
		cc.values[k] = slices.Clone(v)
	}
	for k := range c.scopes {
		cc.scopes[k] = struct{}{}
	}
	return cc
}

// response is a decodable API response type.
type response[T any] interface {
	*T
	setServerResponse(ServerResponse)
}

// pagedResponse is a list response carrying a continuation token.
type pagedResponse[T any] interface {
	response[T]
	nextPageToken() string
}

// doCall executes c once: it resolves a token, sends the request, retries
// whatever the delegate asks to retry and decodes the response into T.
func doCall[T any, PT response[T]](ctx context.Context, c *call) (_ PT, err error) {
	if c.consumed {
		return nil, ErrCallConsumed
	}
	c.consumed = true

	dlg := c.delegate
	if dlg == nil && c.s.newDelegate != nil {
		dlg = c.s.newDelegate()
	}
	if dlg == nil {
		dlg = DefaultDelegate{}
	}

	callID := uuid.NewString()
	logger := c.s.logger.With().
		Str("method", c.method.id).
		Str("call_id", callID).
		Logger()

	ctx, span := c.s.tracer.Start(ctx, c.method.id,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("playmovies.call_id", callID),
			attribute.String("http.request.method", http.MethodGet),
		),
	)
	defer span.End()

	dlg.Begin(MethodInfo{ID: c.method.id, HTTPMethod: http.MethodGet})
	defer func() {
		dlg.Finished(err == nil)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.Debug().Err(err).Msg("Play Movies Partner call failed")
		}
	}()

	for _, field := range c.method.reserved() {
		if _, ok := c.extra.get(field); ok {
			return nil, &FieldClashError{Field: field}
		}
	}

	p := c.buildParams()
	scopes := c.effectiveScopes()
	path := p.expandPath(c.method.path, c.method.pathParams)
	p.remove(c.method.pathParams...)
	requestURL := resolveURL(c.s.basePath, path) + "?" + p.encode()

	for attempt := 1; ; attempt++ {
		span.SetAttributes(attribute.Int("playmovies.attempts", attempt))

		token, tokenErr := c.s.tokens.Token(ctx, scopes)
		if tokenErr != nil {
			replacement, ok := dlg.TokenError(tokenErr)
			if !ok {
				return nil, &MissingTokenError{Err: tokenErr}
			}
			token = replacement
		}

		dlg.PreRequest()
		logger.Debug().
			Str("url", requestURL).
			Int("attempt", attempt).
			Msg("Sending Play Movies Partner request")

		res, body, sendErr := c.send(ctx, requestURL, token)
		if sendErr != nil {
			retry := dlg.HTTPError(sendErr)
			if !retry.Retry {
				return nil, &HTTPError{Err: sendErr}
			}
			logger.Warn().
				Err(sendErr).
				Int("attempt", attempt).
				Dur("retry_after", retry.After).
				Msg("Request failed, retrying")
			if err := sleepContext(ctx, retry.After); err != nil {
				return nil, &HTTPError{Err: err}
			}
			continue
		}

		span.SetAttributes(attribute.Int("http.response.status_code", res.StatusCode))

		if res.StatusCode < 200 || res.StatusCode > 299 {
			apiErr := parseAPIError(body)
			res.Body = io.NopCloser(bytes.NewReader(body))

			retry := dlg.HTTPFailure(res, apiErr)
			if retry.Retry {
				logger.Warn().
					Int("status", res.StatusCode).
					Int("attempt", attempt).
					Dur("retry_after", retry.After).
					Msg("Request returned an error status, retrying")
				if err := sleepContext(ctx, retry.After); err != nil {
					return nil, &HTTPError{Err: err}
				}
				continue
			}

			if apiErr != nil {
				return nil, &BadRequestError{
					StatusCode: res.StatusCode,
					Header:     res.Header,
					Body:       body,
					APIError:   apiErr,
				}
			}
			return nil, &FailureError{
				StatusCode: res.StatusCode,
				Header:     res.Header,
				Body:       body,
			}
		}

		out := PT(new(T))
		if err := json.Unmarshal(body, out); err != nil {
			dlg.DecodeError(string(body), err)
			return nil, &JSONDecodeError{Body: string(body), Err: err}
		}
		out.setServerResponse(ServerResponse{
			HTTPStatusCode: res.StatusCode,
			Header:         res.Header,
		})

		logger.Debug().
			Int("status", res.StatusCode).
			Int("attempt", attempt).
			Msg("Play Movies Partner call succeeded")
		return out, nil
	}
}

// send performs one HTTP attempt and reads the whole body. A body that
// cannot be read is only an error for 2xx responses.
func (c *call) send(ctx context.Context, requestURL, token string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.s.userAgent)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.s.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil && res.StatusCode >= 200 && res.StatusCode <= 299 {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return res, body, nil
}

// parseAPIError returns the structured error carried by body, or nil.
func parseAPIError(body []byte) *APIError {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil
	}
	return env.Error
}

// pages runs c once per page, following the continuation token until the
// last page or until f returns an error. A token that does not advance ends
// the iteration with ErrRepeatedPageToken.
func pages[T any, PT pagedResponse[T]](ctx context.Context, c *call, f func(PT) error) error {
	if c.consumed {
		return ErrCallConsumed
	}
	c.consumed = true

	token := ""
	if v := c.values["pageToken"]; len(v) > 0 {
		token = v[0]
	}

	for {
		page := c.clone()
		if token != "" {
			page.set("pageToken", token)
		}

		res, err := doCall[T, PT](ctx, page)
		if err != nil {
			return err
		}
		if err := f(res); err != nil {
			return err
		}

		next := res.nextPageToken()
		if next == "" {
			return nil
		}
		if next == token {
			return fmt.Errorf("%w: %q", ErrRepeatedPageToken, next)
		}
		token = next
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
