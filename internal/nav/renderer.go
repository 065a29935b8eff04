package nav

// Renderer draws pages. ClearPage always precedes RenderPage so a renderer
// never holds content from two pages at once.
type Renderer interface {
	ClearPage()
	RenderPage(page Page, payload Payload)
}

type Op string

const (
	OpClear  Op = "clear"
	OpRender Op = "render"
)

// Instruction is one recorded renderer call.
type Instruction struct {
	Op      Op       `json:"op" yaml:"op"`
	Page    Page     `json:"page,omitempty" yaml:"page,omitempty"`
	Payload *Payload `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// Recorder is a Renderer that keeps every instruction it receives.
type Recorder struct {
	Instructions []Instruction
}

func (r *Recorder) ClearPage() {
	r.Instructions = append(r.Instructions, Instruction{Op: OpClear})
}

func (r *Recorder) RenderPage(page Page, payload Payload) {
	p := payload
	r.Instructions = append(r.Instructions, Instruction{Op: OpRender, Page: page, Payload: &p})
}

// Renders counts render instructions.
func (r *Recorder) Renders() int {
	n := 0
	for _, in := range r.Instructions {
		if in.Op == OpRender {
			n++
		}
	}
	return n
}

// Last returns the most recent rendered payload.
func (r *Recorder) Last() (Payload, bool) {
	for i := len(r.Instructions) - 1; i >= 0; i-- {
		if in := r.Instructions[i]; in.Op == OpRender && in.Payload != nil {
			return *in.Payload, true
		}
	}
	return Payload{}, false
}

// Drain returns the recorded instructions and forgets them.
func (r *Recorder) Drain() []Instruction {
	out := r.Instructions
	r.Instructions = nil
	return out
}
