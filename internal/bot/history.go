package bot

// HistorySize is how many of its own discards an agent remembers.
const HistorySize = 3

// history is a fixed-capacity ring of card identities. Pushing onto a full
// ring overwrites the oldest entry.
type history struct {
	ids  [HistorySize]string
	n    int
	next int
}

func (h *history) push(id string) {
	h.ids[h.next] = id
	h.next = (h.next + 1) % HistorySize
	if h.n < HistorySize {
		h.n++
	}
}

func (h *history) contains(id string) bool {
	for i := 0; i < h.n; i++ {
		if h.ids[i] == id {
			return true
		}
	}
	return false
}

// list returns the remembered identities, oldest first.
func (h *history) list() []string {
	out := make([]string, 0, h.n)
	start := (h.next - h.n + HistorySize) % HistorySize
	for i := 0; i < h.n; i++ {
		out = append(out, h.ids[(start+i)%HistorySize])
	}
	return out
}
