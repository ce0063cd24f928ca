package pb

import "google.golang.org/protobuf/types/known/timestamppb"

// Deep-copy helpers. Registries own their data exclusively and hand out
// copies; handlers prune copies when applying read masks.

func cloneTime(t *timestamppb.Timestamp) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return &timestamppb.Timestamp{Seconds: t.Seconds, Nanos: t.Nanos}
}

func cloneMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (b *Bounds) Clone() *Bounds {
	if b == nil {
		return nil
	}
	cp := *b
	return &cp
}

func (a *Application) Clone() *Application {
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}

func (w *Window) Clone() *Window {
	if w == nil {
		return nil
	}
	cp := *w
	cp.Bounds = w.Bounds.Clone()
	return &cp
}

func (d *Display) Clone() *Display {
	if d == nil {
		return nil
	}
	cp := *d
	cp.Frame = d.Frame.Clone()
	cp.VisibleFrame = d.VisibleFrame.Clone()
	return &cp
}

func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Bounds = e.Bounds.Clone()
	cp.Attributes = cloneMap(e.Attributes)
	cp.CreateTime = cloneTime(e.CreateTime)
	return &cp
}

func (a *InputAction) Clone() *InputAction {
	if a == nil {
		return nil
	}
	cp := &InputAction{}
	if a.Click != nil {
		c := *a.Click
		cp.Click = &c
	}
	if a.TypeText != nil {
		c := *a.TypeText
		cp.TypeText = &c
	}
	if a.KeyPress != nil {
		c := *a.KeyPress
		c.Modifiers = append([]string(nil), a.KeyPress.Modifiers...)
		cp.KeyPress = &c
	}
	if a.Scroll != nil {
		c := *a.Scroll
		cp.Scroll = &c
	}
	if a.Drag != nil {
		c := *a.Drag
		cp.Drag = &c
	}
	if a.MoveMouse != nil {
		c := *a.MoveMouse
		cp.MoveMouse = &c
	}
	return cp
}

func (in *Input) Clone() *Input {
	if in == nil {
		return nil
	}
	cp := *in
	cp.Action = in.Action.Clone()
	cp.CreateTime = cloneTime(in.CreateTime)
	cp.CompleteTime = cloneTime(in.CompleteTime)
	return &cp
}

func (o *Observation) Clone() *Observation {
	if o == nil {
		return nil
	}
	cp := *o
	cp.CreateTime = cloneTime(o.CreateTime)
	return &cp
}

func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	cp := *s
	cp.CreateTime = cloneTime(s.CreateTime)
	cp.LastAccessTime = cloneTime(s.LastAccessTime)
	cp.ExpireTime = cloneTime(s.ExpireTime)
	cp.Metadata = cloneMap(s.Metadata)
	return &cp
}

func (r *OperationRecord) Clone() *OperationRecord {
	if r == nil {
		return nil
	}
	cp := *r
	cp.OperationTime = cloneTime(r.OperationTime)
	return &cp
}

func (r *Revision) Clone() *Revision {
	if r == nil {
		return nil
	}
	cp := *r
	cp.CreateTime = cloneTime(r.CreateTime)
	return &cp
}

func (p *MacroParameter) Clone() *MacroParameter {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

func (m *Macro) Clone() *Macro {
	if m == nil {
		return nil
	}
	cp := *m
	cp.Actions = CloneActions(m.Actions)
	if m.Parameters != nil {
		cp.Parameters = make([]*MacroParameter, len(m.Parameters))
		for i, p := range m.Parameters {
			cp.Parameters[i] = p.Clone()
		}
	}
	cp.Tags = append([]string(nil), m.Tags...)
	cp.CreateTime = cloneTime(m.CreateTime)
	cp.UpdateTime = cloneTime(m.UpdateTime)
	return &cp
}

// CloneActions deep-copies an action list. Action trees are treated as
// immutable once stored, so the copy shares no mutable state with the input.
func CloneActions(actions []*MacroAction) []*MacroAction {
	if actions == nil {
		return nil
	}
	out := make([]*MacroAction, len(actions))
	for i, a := range actions {
		out[i] = a.cloneAction()
	}
	return out
}

func (a *MacroAction) cloneAction() *MacroAction {
	if a == nil {
		return nil
	}
	cp := &MacroAction{}
	cp.Input = a.Input.Clone()
	if a.Wait != nil {
		w := *a.Wait
		w.Condition = a.Wait.Condition.cloneCondition()
		cp.Wait = &w
	}
	if a.Conditional != nil {
		c := ConditionalAction{
			Condition: a.Conditional.Condition.cloneCondition(),
			Then:      CloneActions(a.Conditional.Then),
			Else:      CloneActions(a.Conditional.Else),
		}
		cp.Conditional = &c
	}
	if a.Loop != nil {
		l := *a.Loop
		l.While = a.Loop.While.cloneCondition()
		if a.Loop.ForEach != nil {
			fe := *a.Loop.ForEach
			l.ForEach = &fe
		}
		l.Body = CloneActions(a.Loop.Body)
		cp.Loop = &l
	}
	if a.Assign != nil {
		as := *a.Assign
		if a.Assign.Literal != nil {
			v := *a.Assign.Literal
			as.Literal = &v
		}
		if a.Assign.Parameter != nil {
			v := *a.Assign.Parameter
			as.Parameter = &v
		}
		if a.Assign.Expression != nil {
			v := *a.Assign.Expression
			as.Expression = &v
		}
		if a.Assign.ElementAttribute != nil {
			v := *a.Assign.ElementAttribute
			as.ElementAttribute = &v
		}
		cp.Assign = &as
	}
	if a.MethodCall != nil {
		mc := *a.MethodCall
		mc.Arguments = cloneMap(a.MethodCall.Arguments)
		cp.MethodCall = &mc
	}
	return cp
}

func (c *MacroCondition) cloneCondition() *MacroCondition {
	if c == nil {
		return nil
	}
	cp := &MacroCondition{}
	if c.ElementExists != nil {
		v := *c.ElementExists
		cp.ElementExists = &v
	}
	if c.WindowExists != nil {
		v := *c.WindowExists
		cp.WindowExists = &v
	}
	if c.ApplicationRunning != nil {
		v := *c.ApplicationRunning
		cp.ApplicationRunning = &v
	}
	if c.VariableEquals != nil {
		v := *c.VariableEquals
		cp.VariableEquals = &v
	}
	if c.Compound != nil {
		cc := CompoundCondition{Operator: c.Compound.Operator}
		for _, child := range c.Compound.Conditions {
			cc.Conditions = append(cc.Conditions, child.cloneCondition())
		}
		cp.Compound = &cc
	}
	return cp
}

func (c *ClipboardContent) Clone() *ClipboardContent {
	if c == nil {
		return nil
	}
	cp := &ClipboardContent{}
	if c.Text != nil {
		v := *c.Text
		cp.Text = &v
	}
	if c.Rtf != nil {
		cp.Rtf = &RtfContent{Data: append([]byte(nil), c.Rtf.Data...)}
	}
	if c.Html != nil {
		v := *c.Html
		cp.Html = &v
	}
	if c.Image != nil {
		cp.Image = &ImageContent{PngData: append([]byte(nil), c.Image.PngData...)}
	}
	if c.Files != nil {
		cp.Files = &FilesContent{Paths: append([]string(nil), c.Files.Paths...)}
	}
	if c.Url != nil {
		v := *c.Url
		cp.Url = &v
	}
	return cp
}

func (e *ClipboardHistoryEntry) Clone() *ClipboardHistoryEntry {
	if e == nil {
		return nil
	}
	return &ClipboardHistoryEntry{
		Content:           e.Content.Clone(),
		CopyTime:          cloneTime(e.CopyTime),
		SourceApplication: e.SourceApplication,
	}
}
