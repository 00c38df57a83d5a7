// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics holds the Prometheus collectors exported on GET /metrics.

Collectors are registered with the default registry when the package loads:

  - quickly_vote_http_requests_total{method, route, status}
  - quickly_vote_http_request_duration_seconds{method, route}
  - quickly_vote_polls_created_total
  - quickly_vote_polls_deleted_total
  - quickly_vote_votes_cast_total
  - quickly_vote_votes_rejected_total{reason}

route is the ServeMux pattern (for example "GET /api/polls/{id}"), never
the raw path, to keep label cardinality bounded. Poll IDs are not used as
labels for the same reason.
*/
package metrics
