package events

import "github.com/Gingeh/uff/internal/logging"

type PickerTracer struct{}

type pickerOutcome string

const (
	PickerOutcomeSelected  pickerOutcome = "selected"
	PickerOutcomeCancelled pickerOutcome = "cancelled"
	PickerOutcomeNoMatch   pickerOutcome = "no-match"
)

var Picker = PickerTracer{}

func (PickerTracer) Launch(binary string, args []string, lines int) {
	logging.Trace("picker.launch", map[string]interface{}{"binary": binary, "args": args, "lines": lines})
}

func (PickerTracer) Result(outcome pickerOutcome, selection string) {
	logging.Trace("picker.result", map[string]interface{}{"outcome": string(outcome), "selection": selection})
}
