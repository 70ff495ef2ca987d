// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package callinfo

// Kind classifies an Error.
type Kind int

const (
	// KindIllegalOption reports a structurally wrong token or value.
	KindIllegalOption Kind = iota + 1

	// KindMissingOption reports a mandatory value with no source.
	KindMissingOption

	// KindHelpRequested is not a failure: the user asked for help.
	KindHelpRequested

	// KindVersionRequested is not a failure: the user asked for the version.
	KindVersionRequested
)

func (k Kind) String() string {
	switch k {
	case KindIllegalOption:
		return "illegal option"
	case KindMissingOption:
		return "missing option"
	case KindHelpRequested:
		return "help requested"
	case KindVersionRequested:
		return "version requested"
	}
	return "unknown"
}

// Error is returned by Resolve when it stops before producing a
// CallInformation. Help holds the full usage text for every kind except
// KindVersionRequested.
type Error struct {
	Kind    Kind
	Message string
	Help    string
}

func (e *Error) Error() string {
	if e.Kind == KindHelpRequested {
		return e.Help
	}
	return e.Message
}

// Success reports whether the caller should print the message and exit
// successfully instead of treating e as a failure.
func (e *Error) Success() bool {
	return e.Kind == KindHelpRequested || e.Kind == KindVersionRequested
}

func illegalOption(msg, help string) *Error {
	return &Error{Kind: KindIllegalOption, Message: msg, Help: help}
}

func missingOption(msg, help string) *Error {
	return &Error{Kind: KindMissingOption, Message: msg, Help: help}
}
