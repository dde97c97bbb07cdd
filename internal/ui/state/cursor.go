package state

// Move names a cursor movement within a level.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MovePageUp
	MovePageDown
	MoveHome
	MoveEnd
)

var moveNames = [...]string{"up", "down", "page-up", "page-down", "home", "end"}

func (mv Move) String() string {
	if mv < 0 || int(mv) >= len(moveNames) {
		return "unknown"
	}
	return moveNames[mv]
}

// MoveCursor applies mv and reports whether the cursor landed on a different
// item. Single steps wrap around the ends of the menu; pages and jumps stop
// at them. page is the number of visible rows, or <= 0 when unknown, in which
// case a page is the whole menu.
func (l *Level) MoveCursor(mv Move, page int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	from := clamp(l.Cursor, 0, n-1)
	to := from
	switch mv {
	case MoveUp:
		to = (from - 1 + n) % n
	case MoveDown:
		to = (from + 1) % n
	case MovePageUp:
		to = clamp(from-pageSize(page, n), 0, n-1)
	case MovePageDown:
		to = clamp(from+pageSize(page, n), 0, n-1)
	case MoveHome:
		to = 0
	case MoveEnd:
		to = n - 1
	}
	l.Cursor = to
	return to != from
}

func pageSize(rows, total int) int {
	if rows <= 0 || rows > total {
		return total
	}
	return rows
}

// ScrollToCursor shifts the viewport the least amount needed to keep the
// cursor inside a window of rows items.
func (l *Level) ScrollToCursor(rows int) {
	n := len(l.Items)
	l.Cursor = clamp(l.Cursor, 0, max(n-1, 0))
	if n == 0 || rows <= 0 {
		l.ViewportOffset = 0
		return
	}
	offset := clamp(l.ViewportOffset, 0, max(n-rows, 0))
	if l.Cursor < offset {
		offset = l.Cursor
	}
	if l.Cursor >= offset+rows {
		offset = l.Cursor - rows + 1
	}
	l.ViewportOffset = offset
}
