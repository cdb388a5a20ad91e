package domain

import "time"

// Trigger markers prefix the title of every greeting. Only messages starting
// with StartTrigger are re-rendered when reactions change.
const (
	StartTrigger = ":ohayou:"
	EndTrigger   = ":otsukaresama:"
)

// Group labels rendered as emoji names.
const (
	GroupPresent  = "zisya"
	GroupLeave    = "oyasumi"
	GroupAMLeave  = "gozen_oyasumi"
	GroupCatchAll = "no-ria"

	UnnamedReaction = "-"
	UnknownMember   = "unknown"
)

// SlackbotUserID is the built-in Slackbot, which is never part of the roster.
const SlackbotUserID = "USLACKBOT"

const TitleDateLayout = "2006/01/02 (Mon)"

// Cache lifetimes, from the live reaction snapshot to daily data.
const (
	ReactionSnapshotTTL = 2 * time.Second
	ReactionDataTTL     = 5 * time.Second
	RosterTTL           = 60 * time.Second
	DirectoryTTL        = 24 * time.Hour
	HolidayTTL          = 24 * time.Hour
)
