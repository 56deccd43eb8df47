// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package views embeds the HTML templates and static assets.
//
// Every page is parsed together with templates/layout.html and rendered
// through the "layout" template. Timestamps in the admin list go through
// go-humanize ("3 minutes ago"). Pages with DisableAnalytics set omit the
// analytics script.
package views
