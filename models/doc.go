// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types for the feedback board.

# Domain Types

  - User: keyed by username; holds the bcrypt password hash and profile
    fields. The hash is excluded from JSON.
  - Feedback: keyed by a store-assigned integer id; owned by exactly one
    username, set at creation and never reassigned.

Form input types live in package forms; these are the persisted shapes.
*/
package models
