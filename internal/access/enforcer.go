// CineResenas - Movie Catalog and Review Aggregation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cineresenas

// Package access decides which intents a session may perform, using a
// casbin RBAC model with two roles:
//
//   - anonymous: every visitor
//   - member: an authenticated session (inherits anonymous)
//
// The built-in policy may be replaced by a CSV file in casbin's policy format.
package access

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"

	"github.com/tomtom215/cineresenas/internal/models"
)

//go:embed model.conf
var embeddedModel string

//go:embed policy.csv
var embeddedPolicy string

// Roles.
const (
	RoleAnonymous = "anonymous"
	RoleMember    = "member"
)

// Objects and actions of the built-in policy. Only write intents are checked.
const (
	ObjMovies    = "movies"
	ObjReviews   = "reviews"
	ObjFavorites = "favorites"
	ObjSession   = "session"
	ObjView      = "view"

	ActCreate = "create"
	ActToggle = "toggle"
	ActWrite  = "write"
)

// ErrForbidden is returned when the policy denies an intent.
var ErrForbidden = errors.New("forbidden")

// Enforcer evaluates intents against the policy.
type Enforcer struct {
	enforcer *casbin.SyncedEnforcer
}

// NewEnforcer loads the embedded model and either policyPath or the
// built-in policy when policyPath is empty.
func NewEnforcer(policyPath string) (*Enforcer, error) {
	m, err := model.NewModelFromString(embeddedModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse access model: %w", err)
	}

	var e *casbin.SyncedEnforcer
	if policyPath != "" {
		e, err = casbin.NewSyncedEnforcer(m, fileadapter.NewAdapter(policyPath))
		if err != nil {
			return nil, fmt.Errorf("failed to load access policy %s: %w", policyPath, err)
		}
	} else {
		e, err = casbin.NewSyncedEnforcer(m)
		if err != nil {
			return nil, fmt.Errorf("failed to create enforcer: %w", err)
		}
		if err := loadPolicy(e, embeddedPolicy); err != nil {
			return nil, err
		}
	}

	return &Enforcer{enforcer: e}, nil
}

func loadPolicy(e *casbin.SyncedEnforcer, policy string) error {
	for _, line := range strings.Split(policy, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		switch {
		case parts[0] == "p" && len(parts) == 4:
			if _, err := e.AddPolicy(parts[1], parts[2], parts[3]); err != nil {
				return fmt.Errorf("failed to add policy %v: %w", parts[1:], err)
			}
		case parts[0] == "g" && len(parts) == 3:
			if _, err := e.AddGroupingPolicy(parts[1], parts[2]); err != nil {
				return fmt.Errorf("failed to add grouping policy %v: %w", parts[1:], err)
			}
		default:
			return fmt.Errorf("malformed policy line %q", line)
		}
	}
	return nil
}

// RoleOf maps a session to its policy role.
func RoleOf(s models.Session) string {
	if s.Authenticated {
		return RoleMember
	}
	return RoleAnonymous
}

// Allowed reports whether role may perform act on obj.
func (e *Enforcer) Allowed(role, obj, act string) (bool, error) {
	ok, err := e.enforcer.Enforce(role, obj, act)
	if err != nil {
		return false, fmt.Errorf("enforcement failed: %w", err)
	}
	return ok, nil
}

// Authorize returns ErrForbidden when s may not perform act on obj.
func (e *Enforcer) Authorize(s models.Session, obj, act string) error {
	role := RoleOf(s)
	ok, err := e.Allowed(role, obj, act)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s may not %s %s: %w", role, act, obj, ErrForbidden)
	}
	return nil
}
