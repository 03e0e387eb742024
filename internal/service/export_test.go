package service

import "time"

// NewHistoryServiceAt is NewHistoryService with a fixed clock.
func NewHistoryServiceAt(repo ConversationRepository, loc *time.Location, now time.Time) HistoryService {
	return newHistoryService(repo, loc, func() time.Time { return now })
}

// NewAdminServiceAt is NewAdminService with a fixed clock.
func NewAdminServiceAt(source StatsSource, password string, loc *time.Location, now time.Time) AdminService {
	return newAdminService(source, password, loc, func() time.Time { return now })
}
