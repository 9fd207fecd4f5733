package playmovies

import (
	"net/http"
	"time"
)

// ServerResponse holds the HTTP metadata of the response a value was decoded from.
type ServerResponse struct {
	// HTTPStatusCode is the status code of the response.
	HTTPStatusCode int
	// Header is the response header.
	Header http.Header
}

func (r *ServerResponse) setServerResponse(v ServerResponse) {
	*r = v
}

// Order is the fulfillment status of an Edit delivered through legacy
// order-based delivery.
type Order struct {
	OrderID                *string    `json:"orderId,omitempty"`
	CustomID               *string    `json:"customId,omitempty"`
	VideoID                *string    `json:"videoId,omitempty"`
	Countries              []string   `json:"countries,omitempty"`
	Type                   *string    `json:"type,omitempty"`
	Name                   *string    `json:"name,omitempty"`
	EpisodeName            *string    `json:"episodeName,omitempty"`
	SeasonName             *string    `json:"seasonName,omitempty"`
	ShowName               *string    `json:"showName,omitempty"`
	Status                 *string    `json:"status,omitempty"`
	StatusDetail           *string    `json:"statusDetail,omitempty"`
	RejectionNote          *string    `json:"rejectionNote,omitempty"`
	OrderedTime            *time.Time `json:"orderedTime,omitempty"`
	ApprovedTime           *time.Time `json:"approvedTime,omitempty"`
	ReceivedTime           *time.Time `json:"receivedTime,omitempty"`
	EarliestAvailStartTime *time.Time `json:"earliestAvailStartTime,omitempty"`
	Priority               *float64   `json:"priority,omitempty"`
	NormalizedPriority     *string    `json:"normalizedPriority,omitempty"`
	LegacyPriority         *string    `json:"legacyPriority,omitempty"`
	ChannelID              *string    `json:"channelId,omitempty"`
	ChannelName            *string    `json:"channelName,omitempty"`
	StudioName             *string    `json:"studioName,omitempty"`
	PphName                *string    `json:"pphName,omitempty"`

	ServerResponse `json:"-"`
}

// Avail is an availability window for an Edit in one territory, following
// the EMA Avails 1.6b metadata schema.
type Avail struct {
	AvailID                    *string  `json:"availId,omitempty"`
	AltID                      *string  `json:"altId,omitempty"`
	VideoID                    *string  `json:"videoId,omitempty"`
	ContentID                  *string  `json:"contentId,omitempty"`
	ProductID                  *string  `json:"productId,omitempty"`
	EncodeID                   *string  `json:"encodeId,omitempty"`
	DisplayName                *string  `json:"displayName,omitempty"`
	TitleInternalAlias         *string  `json:"titleInternalAlias,omitempty"`
	WorkType                   *string  `json:"workType,omitempty"`
	Territory                  *string  `json:"territory,omitempty"`
	StoreLanguage              *string  `json:"storeLanguage,omitempty"`
	Start                      *string  `json:"start,omitempty"`
	End                        *string  `json:"end,omitempty"`
	ReleaseDate                *string  `json:"releaseDate,omitempty"`
	SuppressionLiftDate        *string  `json:"suppressionLiftDate,omitempty"`
	LicenseType                *string  `json:"licenseType,omitempty"`
	FormatProfile              *string  `json:"formatProfile,omitempty"`
	PriceType                  *string  `json:"priceType,omitempty"`
	PriceValue                 *string  `json:"priceValue,omitempty"`
	RatingSystem               *string  `json:"ratingSystem,omitempty"`
	RatingValue                *string  `json:"ratingValue,omitempty"`
	RatingReason               *string  `json:"ratingReason,omitempty"`
	CaptionIncluded            *bool    `json:"captionIncluded,omitempty"`
	CaptionExemption           *string  `json:"captionExemption,omitempty"`
	EpisodeNumber              *string  `json:"episodeNumber,omitempty"`
	EpisodeAltID               *string  `json:"episodeAltId,omitempty"`
	EpisodeTitleInternalAlias  *string  `json:"episodeTitleInternalAlias,omitempty"`
	SeasonNumber               *string  `json:"seasonNumber,omitempty"`
	SeasonAltID                *string  `json:"seasonAltId,omitempty"`
	SeasonTitleInternalAlias   *string  `json:"seasonTitleInternalAlias,omitempty"`
	SeriesAltID                *string  `json:"seriesAltId,omitempty"`
	SeriesTitleInternalAlias   *string  `json:"seriesTitleInternalAlias,omitempty"`
	PphNames                   []string `json:"pphNames,omitempty"`

	ServerResponse `json:"-"`
}

// AvailEndOpen is the End value of an avail without an end date.
const AvailEndOpen = "Open"

// IsOpenEnded reports whether the avail window has no end date.
func (a *Avail) IsOpenEnded() bool {
	return a.End != nil && *a.End == AvailEndOpen
}

// StoreInfo describes one playable asset of an Edit in one country.
type StoreInfo struct {
	VideoID        *string    `json:"videoId,omitempty"`
	Country        *string    `json:"country,omitempty"`
	Type           *string    `json:"type,omitempty"`
	Name           *string    `json:"name,omitempty"`
	Mid            *string    `json:"mid,omitempty"`
	TitleLevelEidr *string    `json:"titleLevelEidr,omitempty"`
	EditLevelEidr  *string    `json:"editLevelEidr,omitempty"`
	LiveTime       *time.Time `json:"liveTime,omitempty"`
	StudioName     *string    `json:"studioName,omitempty"`
	PphNames       []string   `json:"pphNames,omitempty"`
	ShowID         *string    `json:"showId,omitempty"`
	ShowName       *string    `json:"showName,omitempty"`
	SeasonID       *string    `json:"seasonId,omitempty"`
	SeasonName     *string    `json:"seasonName,omitempty"`
	SeasonNumber   *string    `json:"seasonNumber,omitempty"`
	EpisodeNumber  *string    `json:"episodeNumber,omitempty"`
	TrailerID      *string    `json:"trailerId,omitempty"`
	AudioTracks    []string   `json:"audioTracks,omitempty"`
	Subtitles      []string   `json:"subtitles,omitempty"`
	HasHdOffer     *bool      `json:"hasHdOffer,omitempty"`
	HasSdOffer     *bool      `json:"hasSdOffer,omitempty"`
	HasEstOffer    *bool      `json:"hasEstOffer,omitempty"`
	HasVodOffer    *bool      `json:"hasVodOffer,omitempty"`
	HasAudio51     *bool      `json:"hasAudio51,omitempty"`
	HasInfoCards   *bool      `json:"hasInfoCards,omitempty"`

	ServerResponse `json:"-"`
}

// StoreInfoKey identifies a StoreInfo within an account.
type StoreInfoKey struct {
	VideoID string
	Country string
}

// Key returns the (video, country) identity of the store info. Absent
// fields yield empty strings.
func (s *StoreInfo) Key() StoreInfoKey {
	var k StoreInfoKey
	if s.VideoID != nil {
		k.VideoID = *s.VideoID
	}
	if s.Country != nil {
		k.Country = *s.Country
	}
	return k
}

// ListOrdersResponse is one page of orders.
type ListOrdersResponse struct {
	Orders        []*Order `json:"orders,omitempty"`
	TotalSize     *int32   `json:"totalSize,omitempty"`
	NextPageToken *string  `json:"nextPageToken,omitempty"`

	ServerResponse `json:"-"`
}

// HasNextPage reports whether another page follows this one.
func (r *ListOrdersResponse) HasNextPage() bool {
	return r.nextPageToken() != ""
}

func (r *ListOrdersResponse) nextPageToken() string {
	return deref(r.NextPageToken)
}

// ListAvailsResponse is one page of avails.
type ListAvailsResponse struct {
	Avails        []*Avail `json:"avails,omitempty"`
	TotalSize     *int32   `json:"totalSize,omitempty"`
	NextPageToken *string  `json:"nextPageToken,omitempty"`

	ServerResponse `json:"-"`
}

// HasNextPage reports whether another page follows this one.
func (r *ListAvailsResponse) HasNextPage() bool {
	return r.nextPageToken() != ""
}

func (r *ListAvailsResponse) nextPageToken() string {
	return deref(r.NextPageToken)
}

// ListStoreInfosResponse is one page of store infos.
type ListStoreInfosResponse struct {
	StoreInfos    []*StoreInfo `json:"storeInfos,omitempty"`
	TotalSize     *int32       `json:"totalSize,omitempty"`
	NextPageToken *string      `json:"nextPageToken,omitempty"`

	ServerResponse `json:"-"`
}

// HasNextPage reports whether another page follows this one.
func (r *ListStoreInfosResponse) HasNextPage() bool {
	return r.nextPageToken() != ""
}

func (r *ListStoreInfosResponse) nextPageToken() string {
	return deref(r.NextPageToken)
}

// APIError is the structured error payload returned with non-2xx responses.
type APIError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status,omitempty"`
	Errors  []ErrorItem `json:"errors,omitempty"`
}

// ErrorItem is one entry of APIError.Errors.
type ErrorItem struct {
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
	Domain  string `json:"domain,omitempty"`
}

type errorEnvelope struct {
	Error *APIError `json:"error"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
