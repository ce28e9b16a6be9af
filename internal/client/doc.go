// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the kiosk application runtime.
//
// It ties the terminal UI to the kiosk service for one process lifetime and
// makes sure the student session is forgotten when the kiosk exits.
package client
