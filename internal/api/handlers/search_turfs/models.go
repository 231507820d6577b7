package search_turfs

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-TurfService/internal/service/turfs/models"
)

var errInvalidQueryParam = errors.New("invalid query parameter")

// parseQuery собирает запрос сервиса из query-параметров:
// q, city, categoryId, minPrice, maxPrice, sortBy, limit, offset
func parseQuery(query url.Values) (*models.SearchTurfsRequest, error) {
	req := &models.SearchTurfsRequest{
		Query:  query.Get("q"),
		City:   query.Get("city"),
		SortBy: query.Get("sortBy"),
	}

	if raw := query.Get("categoryId"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || categoryID <= 0 {
			return nil, errInvalidQueryParam
		}
		req.CategoryID = &categoryID
	}

	if raw := query.Get("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		req.MinPrice = &minPrice
	}

	if raw := query.Get("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		req.MaxPrice = &maxPrice
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.Offset = offset
	}

	return req, nil
}
