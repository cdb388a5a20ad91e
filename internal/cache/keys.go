package cache

import "fmt"

// Keys are namespaced by source, entity and a date or message discriminator.

const DirectoryKey = "slack.users.list"

func ReactionSnapshotKey(channel, ts string) string {
	return fmt.Sprintf("slack.reactions.%s.%s", channel, ts)
}

func ReactionDataKey(channel, ts string) string {
	return ReactionSnapshotKey(channel, ts) + ".data"
}

// SheetRowKey addresses one spreadsheet row of a month tab (yyyy/M).
func SheetRowKey(month string, row int) string {
	return fmt.Sprintf("google.sheets.rows.%s.%d", month, row)
}

func HolidaysKey(year int) string {
	return fmt.Sprintf("holidays.jp.list.%d", year)
}
