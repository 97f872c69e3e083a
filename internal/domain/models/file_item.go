// Copyright The Mety Authors.
// SPDX-License-Identifier: MIT

package models

import (
	"fmt"
	"time"
)

// FileItem is the metadata record for a file shared in a meeting. No file
// bytes are handled by the session store; transfer and retrieval belong to
// the storage collaborator, so URL stays empty here.
type FileItem struct {
	UID        string    `json:"uid"`
	MeetingUID string    `json:"meeting_uid"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
	URL        string    `json:"url,omitempty"`
}

// FileDescriptor is the caller-supplied description of a file being shared.
type FileDescriptor struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// Tags generates a consistent set of tags for the file item.
func (f *FileItem) Tags() []string {
	if f == nil {
		return nil
	}

	tags := []string{}

	if f.UID != "" {
		tags = append(tags, f.UID)
		tags = append(tags, fmt.Sprintf("file_uid:%s", f.UID))
	}

	if f.MeetingUID != "" {
		tags = append(tags, fmt.Sprintf("meeting_uid:%s", f.MeetingUID))
	}

	if f.Name != "" {
		tags = append(tags, fmt.Sprintf("name:%s", f.Name))
	}

	return tags
}
