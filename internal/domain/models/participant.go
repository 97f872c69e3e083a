// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package models

import "fmt"

// Participant is one member of a meeting's live roster. A participant belongs
// to exactly one meeting; identifiers are never reused after a leave.
type Participant struct {
	UID        string `json:"uid"`
	MeetingUID string `json:"meeting_uid"`
	Name       string `json:"name"`
	Host       bool   `json:"host,omitempty"`
	MicOn      bool   `json:"mic_on"`
	CamOn      bool   `json:"cam_on"`
}

// ParticipantOptions carries optional overrides applied when a participant
// joins. Nil fields keep the join defaults (mic and camera on, not a host).
type ParticipantOptions struct {
	Host  *bool `json:"host,omitempty"`
	MicOn *bool `json:"mic_on,omitempty"`
	CamOn *bool `json:"cam_on,omitempty"`
}

// ApplyOptions overlays any non-nil option fields onto the participant.
func (p *Participant) ApplyOptions(opts *ParticipantOptions) {
	if opts == nil {
		return
	}
	if opts.Host != nil {
		p.Host = *opts.Host
	}
	if opts.MicOn != nil {
		p.MicOn = *opts.MicOn
	}
	if opts.CamOn != nil {
		p.CamOn = *opts.CamOn
	}
}

// Tags generates a consistent set of tags for the participant.
func (p *Participant) Tags() []string {
	if p == nil {
		return nil
	}

	tags := []string{}

	if p.UID != "" {
		tags = append(tags, p.UID)
		tags = append(tags, fmt.Sprintf("participant_uid:%s", p.UID))
	}

	if p.MeetingUID != "" {
		tags = append(tags, fmt.Sprintf("meeting_uid:%s", p.MeetingUID))
	}

	if p.Name != "" {
		tags = append(tags, fmt.Sprintf("name:%s", p.Name))
	}

	return tags
}
