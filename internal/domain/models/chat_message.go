// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"fmt"
	"time"
)

// ChatMessage is one entry in a meeting's append-only chat log. Once stored
// it is never mutated or removed, and the log's insertion order is the
// canonical order.
type ChatMessage struct {
	UID        string    `json:"uid"`
	MeetingUID string    `json:"meeting_uid"`
	SenderUID  string    `json:"sender_uid"`
	SenderName string    `json:"sender_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// Tags generates a consistent set of tags for the chat message.
func (m *ChatMessage) Tags() []string {
	if m == nil {
		return nil
	}

	tags := []string{}

	if m.UID != "" {
		tags = append(tags, m.UID)
		tags = append(tags, fmt.Sprintf("message_uid:%s", m.UID))
	}

	if m.MeetingUID != "" {
		tags = append(tags, fmt.Sprintf("meeting_uid:%s", m.MeetingUID))
	}

	if m.SenderUID != "" {
		tags = append(tags, fmt.Sprintf("sender_uid:%s", m.SenderUID))
	}

	return tags
}
