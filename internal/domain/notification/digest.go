package notification

import (
	"strconv"
	"strings"
	"time"
)

const (
	subjectPrefix  = "Your mentorship update"
	timestampFmt   = "Jan 2, 2006 at 3:04 PM MST"
	callToAction   = "Log in to your Coachdesk dashboard to review everything and reply to your mentor."
	signatureBlock = "The Coachdesk team"
)

// Digest is the single composed email for one recipient's queue.
type Digest struct {
	Subject string
	Body    string
}

type kindGroup struct {
	kind   Kind
	events []*PendingEvent
}

// ComposeDigest groups events by kind in display order, keeping insertion order
// inside each group. Output depends only on its arguments.
func ComposeDigest(recipientName string, events []*PendingEvent) Digest {
	groups := groupByKind(events)
	return Digest{
		Subject: composeSubject(groups),
		Body:    composeBody(recipientName, countEvents(groups), groups),
	}
}

func groupByKind(events []*PendingEvent) []kindGroup {
	byKind := make(map[Kind][]*PendingEvent, len(displayOrder))
	for _, ev := range events {
		if ev == nil {
			continue
		}
		byKind[ev.Kind()] = append(byKind[ev.Kind()], ev)
	}

	groups := make([]kindGroup, 0, len(byKind))
	for _, k := range displayOrder {
		if evs := byKind[k]; len(evs) > 0 {
			groups = append(groups, kindGroup{kind: k, events: evs})
		}
	}
	return groups
}

func countEvents(groups []kindGroup) int {
	n := 0
	for _, g := range groups {
		n += len(g.events)
	}
	return n
}

func composeSubject(groups []kindGroup) string {
	if len(groups) == 0 {
		return subjectPrefix
	}
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = strconv.Itoa(len(g.events)) + " " + g.kind.countNoun(len(g.events))
	}
	return subjectPrefix + ": " + joinWithAmpersand(parts)
}

// "a", "a & b", "a, b & c"
func joinWithAmpersand(parts []string) string {
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " & " + parts[len(parts)-1]
}

func composeBody(recipientName string, total int, groups []kindGroup) string {
	var b strings.Builder

	name := strings.TrimSpace(recipientName)
	if name == "" {
		name = "there"
	}
	b.WriteString("Hi " + name + ",\n\n")

	noun := "updates"
	if total == 1 {
		noun = "update"
	}
	b.WriteString("You have " + strconv.Itoa(total) + " new " + noun + " from your mentorship program.\n")

	for _, g := range groups {
		b.WriteString("\n" + g.kind.heading() + " (" + strconv.Itoa(len(g.events)) + ")\n")
		for _, ev := range g.events {
			b.WriteString("- " + ev.Title() + "\n")
			if d := strings.TrimSpace(ev.Details()); d != "" {
				b.WriteString("  " + d + "\n")
			}
			if ts := formatTimestamp(ev.CreatedAt()); ts != "" {
				b.WriteString("  " + ts + "\n")
			}
		}
	}

	b.WriteString("\n" + callToAction + "\n\n")
	b.WriteString(signatureBlock + "\n")
	return b.String()
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampFmt)
}
