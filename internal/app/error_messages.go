// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// lateness-tracker server handlers and the kiosk client.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. The kiosk matches on them to recognise failures, so the
// wording is part of the API.
package app

const (
	// MsgStudentCreated is returned after a successful registration.
	MsgStudentCreated = "Student account created!"

	// MsgLoginSuccessful is returned together with the student view after a
	// successful login.
	MsgLoginSuccessful = "Login successful"

	// MsgAttendanceRecorded is returned after a lateness record is stored.
	MsgAttendanceRecorded = "Attendance recorded!"

	// MsgRegistrationFailed is returned for every failed registration,
	// whatever the cause.
	MsgRegistrationFailed = "Registration failed"

	// MsgUserNotFound is returned when no student has the supplied email.
	MsgUserNotFound = "User not found"

	// MsgWrongPassword is returned when the password does not match.
	MsgWrongPassword = "Wrong password"

	// MsgAPIRouteNotFound is returned for any /api path or method the server
	// does not serve.
	MsgAPIRouteNotFound = "API route not found"

	// MsgAccessDenied is returned when the admin authorizer refuses a caller.
	MsgAccessDenied = "access denied"

	// MsgInternalServerError is returned when a handler panics.
	MsgInternalServerError = "internal server error"
)
