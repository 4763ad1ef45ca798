// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sandbox is an in-memory implementation of the legacy-keeper REST
// backend. It keeps accounts, vaults, memberships, media, invite links and
// notifications in maps guarded by one mutex and renders them in the API*
// wire shapes of package models.
//
// Every operation takes the id of the calling account and enforces the
// vault role rules itself, so the HTTP layer only decodes and encodes.
package sandbox

import (
	"sync"
	"time"

	"github.com/MKhiriev/legacy-keeper/internal/logger"
	"github.com/MKhiriev/legacy-keeper/internal/utils"
	"github.com/MKhiriev/legacy-keeper/models"
)

// DefaultInviteTTL is the lifetime of email invites.
const DefaultInviteTTL = 7 * 24 * time.Hour

const minPasswordLength = 8

// Option configures a [Sandbox].
type Option func(*Sandbox)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Sandbox) {
		s.now = now
	}
}

// WithPasswordKey sets the HMAC key passwords are hashed with.
func WithPasswordKey(key string) Option {
	return func(s *Sandbox) {
		s.passwordKey = key
	}
}

// WithLogger attaches a logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Sandbox) {
		s.logger = l
	}
}

type Sandbox struct {
	mu sync.RWMutex

	ids         *utils.UUIDGenerator
	now         func() time.Time
	passwordKey string

	accounts      map[string]*account
	emails        map[string]string
	vaults        map[string]*vaultRecord
	memberships   map[string]*membership
	media         map[string]*mediaRecord
	files         map[string]*fileRecord
	invites       map[string]*inviteRecord
	notifications map[string][]*notificationRecord
	preferences   map[string]models.NotificationPreferences

	logger *logger.Logger
}

// New returns an empty sandbox.
func New(opts ...Option) *Sandbox {
	s := &Sandbox{
		ids:           utils.NewUUIDGenerator(),
		now:           time.Now,
		passwordKey:   "legacy-keeper-sandbox",
		accounts:      make(map[string]*account),
		emails:        make(map[string]string),
		vaults:        make(map[string]*vaultRecord),
		memberships:   make(map[string]*membership),
		media:         make(map[string]*mediaRecord),
		files:         make(map[string]*fileRecord),
		invites:       make(map[string]*inviteRecord),
		notifications: make(map[string][]*notificationRecord),
		preferences:   make(map[string]models.NotificationPreferences),
		logger:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type account struct {
	id            string
	email         string
	fullName      string
	bio           string
	passwordHash  string
	activeVaultID string
	createdAt     time.Time
}

type vaultRecord struct {
	id          string
	name        string
	familyName  string
	description string
	ownerID     string
	createdAt   time.Time
}

// membership links an account to a vault. Pending memberships come from
// email invites and have no account until the invite is redeemed.
type membership struct {
	id        string
	vaultID   string
	userID    string
	email     string
	role      models.UserRole
	active    bool
	createdAt time.Time
}

type mediaRecord struct {
	id          string
	vaultID     string
	uploaderID  string
	title       string
	description string
	mediaType   models.MediaType
	visibility  models.Visibility
	dateTaken   string
	location    string
	tags        []string
	fileIDs     []string
	favoredBy   map[string]bool
	createdAt   time.Time
}

type fileRecord struct {
	id        string
	mediaID   string
	name      string
	mimeType  string
	content   []byte
	createdAt time.Time
}

type inviteRecord struct {
	id        string
	vaultID   string
	token     string
	role      models.UserRole
	createdBy string
	expiresAt time.Time
	createdAt time.Time
	revoked   bool
	joined    int

	// set for email invites, which are single use
	membershipID string
}

func (i *inviteRecord) usable(now time.Time) bool {
	if i.revoked || !now.Before(i.expiresAt) {
		return false
	}
	return i.membershipID == "" || i.joined == 0
}

type notificationRecord struct {
	id        string
	title     string
	message   string
	kind      string
	route     string
	vaultID   string
	actorName string
	read      bool
	createdAt time.Time
}

// FileContent is a stored attachment.
type FileContent struct {
	Name     string
	MimeType string
	Content  []byte
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func ptr[T any](v T) *T {
	return &v
}
