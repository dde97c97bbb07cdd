package ui

import "time"

const noticeTTL = 5 * time.Second

// notice is the transient line shown under the menu.
type notice struct {
	text  string
	until time.Time
}

func (n notice) live(now time.Time) bool {
	return n.text != "" && !now.After(n.until)
}

func (m *Model) setInfo(text string) {
	m.info = notice{text: text, until: time.Now().Add(noticeTTL)}
}

// clearInfo drops the notice once it has been up for noticeTTL.
func (m *Model) clearInfo() {
	if !m.info.live(time.Now()) {
		m.info = notice{}
	}
}

func (m *Model) forceClearInfo() {
	m.info = notice{}
}

func (m *Model) currentInfo() string {
	m.clearInfo()
	return m.info.text
}

// statusLine is the first bottom-bar row: the last error, else a font
// backend warning.
func (m *Model) statusLine() row {
	if m.errMsg != "" {
		return row{text: "Error: " + m.errMsg, style: styles.Error}
	}
	if warn, msg := m.hasBackendIssue(); warn {
		return row{text: "Fonts: " + msg, style: styles.Loading}
	}
	return row{}
}
