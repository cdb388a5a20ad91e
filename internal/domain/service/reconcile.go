package service

import (
	"github.com/diegoclair/slack-greet-bot/internal/domain"
	"github.com/diegoclair/slack-greet-bot/internal/domain/entity"
)

type idSet map[string]struct{}

func newIDSet(lists ...[]string) idSet {
	s := make(idSet)
	for _, ids := range lists {
		for _, id := range ids {
			s[id] = struct{}{}
		}
	}
	return s
}

func (s idSet) has(id string) bool {
	_, ok := s[id]
	return ok
}

// without returns ids not present in any of the excluded sets, in order.
func without(ids []string, excluded ...idSet) []string {
	var out []string
	for _, id := range ids {
		skip := false
		for _, ex := range excluded {
			if ex.has(id) {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, id)
		}
	}
	return out
}

// Reconcile merges the member directory, the reactions of a greeting and the
// attendance roster of its date into the groups to render.
//
// A member who reacted is taken out of every roster category. A member listed
// in several categories is kept in the first of leave, am-leave, present.
// Everyone left over lands in the catch-all group unless marked hidden.
// Groups come out as: one per reaction in the given order, then the non-empty
// categories (present, leave, am-leave), then the catch-all group.
func Reconcile(members []entity.Member, reactions []entity.Reaction, roster entity.Roster) []entity.Group {
	directory := make(map[string]entity.Member, len(members))
	for _, m := range members {
		directory[m.ID] = m
	}

	reacted := make(idSet)
	for _, r := range reactions {
		for _, id := range r.Users {
			reacted[id] = struct{}{}
		}
	}

	leave := without(roster.Leave, reacted)
	amLeave := without(roster.AMLeave, reacted, newIDSet(leave))
	present := without(roster.Present, reacted, newIDSet(leave, amLeave))

	counted := newIDSet(leave, amLeave, present)
	for id := range reacted {
		counted[id] = struct{}{}
	}
	hidden := newIDSet(without(roster.Hidden, reacted))

	groups := make([]entity.Group, 0, len(reactions)+4)
	for _, r := range reactions {
		name := r.Name
		if name == "" {
			name = domain.UnnamedReaction
		}
		groups = append(groups, entity.Group{Name: name, Members: resolve(r.Users, directory)})
	}

	categories := []struct {
		name string
		ids  []string
	}{
		{domain.GroupPresent, present},
		{domain.GroupLeave, leave},
		{domain.GroupAMLeave, amLeave},
	}
	for _, c := range categories {
		if len(c.ids) == 0 {
			continue
		}
		set := newIDSet(c.ids)
		groups = append(groups, entity.Group{
			Name:    c.name,
			Members: filterMembers(members, func(m entity.Member) bool { return set.has(m.ID) }),
		})
	}

	groups = append(groups, entity.Group{
		Name: domain.GroupCatchAll,
		Members: filterMembers(members, func(m entity.Member) bool {
			return !counted.has(m.ID) && !hidden.has(m.ID)
		}),
	})

	return groups
}

// resolve looks ids up in the directory, dropping the unknown ones.
func resolve(ids []string, directory map[string]entity.Member) []entity.Member {
	out := []entity.Member{}
	for _, id := range ids {
		if m, ok := directory[id]; ok {
			out = append(out, m)
		}
	}
	return out
}

func filterMembers(members []entity.Member, keep func(entity.Member) bool) []entity.Member {
	out := []entity.Member{}
	for _, m := range members {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
