/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/gob"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
)

// FlashType is the style of a flash message.
type FlashType string

// Flash message styles.
const (
	FlashError   FlashType = "error"
	FlashSuccess FlashType = "success"
	FlashWarning FlashType = "warning"
)

const flashSessionKey = "posyandu::flash"

// FlashMessage is shown once on the next rendered page.
type FlashMessage struct {
	Type    FlashType
	Message string
}

func init() {
	// Flash messages travel through the gob encoded session.
	gob.Register(FlashMessage{})
}

// SetErrorFlash queues an error message.
func SetErrorFlash(s session.Session, message string) {
	s.Set(flashSessionKey, FlashMessage{Type: FlashError, Message: message})
}

// SetSuccessFlash queues a success message.
func SetSuccessFlash(s session.Session, message string) {
	s.Set(flashSessionKey, FlashMessage{Type: FlashSuccess, Message: message})
}

// SetWarningFlash queues a warning, used when a visit needs a referral.
func SetWarningFlash(s session.Session, message string) {
	s.Set(flashSessionKey, FlashMessage{Type: FlashWarning, Message: message})
}

// FlashInjector moves the pending flash message into .Flash for the
// templates of the current request.
func FlashInjector() flamego.Handler {
	return func(s session.Session, data template.Data) {
		msg, ok := s.Get(flashSessionKey).(FlashMessage)
		if !ok {
			return
		}

		s.Delete(flashSessionKey)
		data["Flash"] = msg
	}
}
