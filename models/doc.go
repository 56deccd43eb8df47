// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, domain and page content types.

# Domain Types

  - Lead: a persisted contact form submission
  - Flash: one-shot user message carried in the session
  - Service, Project: fixed marketing content for the home page

Lead carries db tags for sqlx scanning:

	var leads []models.Lead
	err := conn.SelectContext(ctx, &leads, query)

# Request Types

  - AdminDoorRequest: pin
  - ContactForm: trimmed form fields, including the website honeypot

# Response Types

  - AdminDoorResponse: ok
  - HealthResponse: status
  - ErrorResponse: error, message

# Constants

Flash categories:

	FlashSuccess = "success"
	FlashError   = "error"

Column limits (longer input is truncated before insert):

	MaxNameLen  = 120
	MaxEmailLen = 200
	MaxPhoneLen = 50
*/
package models
