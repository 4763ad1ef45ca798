// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It wires the session store, the REST gateway, the client services and
// the notification poller into a single process lifecycle.
package client
