// Copyright (c) 2026 Yapfastr Team
// Yapfastr - tweet composer popup
// This source code is licensed under the MIT license found in the LICENSE file.

package composer

import "strconv"

// Tone selects how the count indicator is colored.
type Tone int

const (
	ToneSuccess Tone = iota
	ToneError
)

func (t Tone) String() string {
	switch t {
	case ToneSuccess:
		return "success"
	case ToneError:
		return "error"
	default:
		return "unknown"
	}
}

// Indicator is the rendered character count.
type Indicator struct {
	Text string
	Tone Tone
}

// indicatorFor renders count against Limit. Above the limit the limit is shown
// too; only unverified accounts get the error tone.
func indicatorFor(count int, verified bool) Indicator {
	if count <= Limit {
		return Indicator{Text: strconv.Itoa(count), Tone: ToneSuccess}
	}
	tone := ToneError
	if verified {
		tone = ToneSuccess
	}
	return Indicator{Text: strconv.Itoa(count) + "/" + strconv.Itoa(Limit), Tone: tone}
}
