// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of go-fit-tracker.
//
// It wires the chi router, request handlers and middleware. Authentication,
// tracing, access logging, metrics, CORS and response compression are
// handled here before requests are delegated to the service layer. Service
// errors are translated to status codes in one place, see statusFromError.
package http
