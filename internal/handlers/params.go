package handlers

import (
	"net/url"
	"strconv"
	"time"

	"campaignadmin/internal/interfaces"
	"campaignadmin/internal/models"
)

// queryBool treats exactly "true" as true; any other value, including
// "TRUE" and "1", is false.
func queryBool(q url.Values, key string) bool {
	return q.Get(key) == "true"
}

func queryString(q url.Values, key string) *string {
	v := q.Get(key)
	if v == "" {
		return nil
	}
	return &v
}

func queryCursor(q url.Values, key string) (*time.Time, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return nil, interfaces.InvalidArgument("%s %q is not an RFC 3339 timestamp", key, v)
	}
	return &t, nil
}

// reportFilterFromQuery converts the loosely typed report query into a filter.
// An unusable limit is left at zero so the default applies downstream.
func reportFilterFromQuery(q url.Values) (models.ReportFilter, error) {
	cursor, err := queryCursor(q, "lastRecordCreatedAt")
	if err != nil {
		return models.ReportFilter{}, err
	}

	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil {
		limit = 0
	}

	return models.ReportFilter{
		Status:              queryString(q, "status"),
		LocationNm:          queryString(q, "locationNm"),
		UserID:              queryString(q, "userId"),
		CampaignID:          queryString(q, "campaignId"),
		LastRecordCreatedAt: cursor,
		Live:                queryBool(q, "live"),
		ApplyLimit:          queryBool(q, "applyLimit"),
		Limit:               limit,
	}, nil
}
