package tuiapp

// focusTarget is the widget receiving key presses. Tab cycles through them in this order.
type focusTarget int

const (
	focusYear         focusTarget = iota // year of the launch date
	focusMonth                           // month of the launch date
	focusDay                             // day of the launch date
	focusPictureDate                     // ISO date of the picture-only lookup
	focusLaunchTable                     // scrolling through the launch results
	focusTargetCount                     // number of focus targets, keep last
	dateInputCount   = int(focusDay) + 1 // number of inputs making up the launch date
)

func (f focusTarget) next() focusTarget {
	return (f + 1) % focusTargetCount
}

func (f focusTarget) prev() focusTarget {
	return (f + focusTargetCount - 1) % focusTargetCount
}

func (f focusTarget) isLaunchDate() bool {
	return f <= focusDay
}
