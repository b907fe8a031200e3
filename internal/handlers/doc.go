// Package handlers implements the HTTP API layer for search-task-gang.
//
// Handlers validate requests, run them through the services layer and
// convert the outcomes to the api/v1 types.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                     HTTP Request (Gin)                          │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│                      Handler (this package)                     │
//	│  - Request binding and word validation                          │
//	│  - One Dispatcher per request                                   │
//	│  - Model-to-API conversion                                      │
//	└─────────────────────────────────────────────────────────────────┘
//	                              │
//	                              ▼
//	┌─────────────────────────────────────────────────────────────────┐
//	│        Services Layer ──► shared Scheduler (elastic pool)       │
//	└─────────────────────────────────────────────────────────────────┘
//
// # Endpoints
//
//	┌────────┬──────────────────┬───────────────────────────────────────┐
//	│ Method │ Path             │ Description                           │
//	├────────┼──────────────────┼───────────────────────────────────────┤
//	│ POST   │ /searches        │ Search words in inputs                │
//	│ GET    │ /health          │ Service status and pool counters      │
//	└────────┴──────────────────┴───────────────────────────────────────┘
//
// # Search Handler
//
// POST /searches
//
// Request:
//
//	{
//	    "words":  ["the", "fox"],
//	    "inputs": ["the quick fox", "no match here"]
//	}
//
// Inputs are named input-0, input-1... by position.
//
// Response: 200 OK
//
//	{
//	    "id": "6f1c...",
//	    "results": [
//	        {"input": "input-0", "word": "fox", "positions": [10], "found": true},
//	        ...
//	    ],
//	    "failures": [
//	        {"kind": "search", "input": "input-1", "word": "the", "error": "..."}
//	    ],
//	    "stats": {"inputs": 2, "words": 2, "expected": 4, "succeeded": 3, "failed": 1, "durationMs": 2}
//	}
//
// Results are listed in the order the searches finished. A failed search
// does not fail the request, it is listed under failures.
//
// Errors:
//   - 400 Bad Request: malformed body, no words or an empty word
//   - 503 Service Unavailable: the request was canceled before every search finished
//
// # Health Handler
//
// GET /health
//
//	{"status": "ok", "workers": {"live": 4, "busy": 1, "idle": 3, "queued": 0}}
package handlers
