// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"fmt"
	"time"
)

// Caption is one timed line in a meeting's append-only caption log, tagged
// with the language actually served (which may be the fallback language when
// the requested one is unsupported).
type Caption struct {
	UID        string    `json:"uid"`
	MeetingUID string    `json:"meeting_uid"`
	Text       string    `json:"text"`
	Lang       string    `json:"lang"`
	CreatedAt  time.Time `json:"created_at"`
}

// Tags generates a consistent set of tags for the caption.
func (c *Caption) Tags() []string {
	if c == nil {
		return nil
	}

	tags := []string{}

	if c.UID != "" {
		tags = append(tags, c.UID)
		tags = append(tags, fmt.Sprintf("caption_uid:%s", c.UID))
	}

	if c.MeetingUID != "" {
		tags = append(tags, fmt.Sprintf("meeting_uid:%s", c.MeetingUID))
	}

	if c.Lang != "" {
		tags = append(tags, fmt.Sprintf("lang:%s", c.Lang))
	}

	return tags
}
