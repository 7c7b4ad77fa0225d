// Package paging models the page-numbered envelopes returned by list
// endpoints of the upstream API.
//
//	params := paging.NormalizeParams(paging.Params{Page: 2})
//	values, _ := paging.Query(params)        // page=2&limit=20
//	env.TotalPages == paging.TotalPages(env.TotalItems, params.Limit)
package paging
