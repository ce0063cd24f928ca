package macros

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/elements"
	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/internal/platform"
	"github.com/macosusesdk/automationd/pb"
)

const (
	// DefaultExecuteTimeout bounds a whole macro run when the caller gives none.
	DefaultExecuteTimeout = 5 * time.Minute

	waitPollInterval   = 500 * time.Millisecond
	defaultWaitTimeout = 30 * time.Second

	// findLimit caps adapter element searches issued by conditions and loops.
	findLimit = 100
)

var varToken = regexp.MustCompile(`\$\{([A-Za-z0-9_]+)\}`)

// MacroContext is the mutable state of one execution. Variables shadow
// parameters during ${var} substitution.
type MacroContext struct {
	Variables  map[string]string
	Parameters map[string]string
	Parent     string
	Pid        int32 // 0 when the parent is the wildcard scope
}

// Substitute replaces ${name} tokens with a variable, then a parameter.
// Unknown names are left intact.
func (c *MacroContext) Substitute(s string) string {
	return varToken.ReplaceAllStringFunc(s, func(tok string) string {
		name := tok[2 : len(tok)-1]
		if v, ok := c.Variables[name]; ok {
			return v
		}
		if v, ok := c.Parameters[name]; ok {
			return v
		}
		return tok
	})
}

// Executor interprets macro action lists. At most one Execute runs at a
// time; concurrent calls queue on the semaphore.
type Executor struct {
	logger   *log.Logger
	sys      platform.SystemOperations
	elements *elements.Registry
	sem      chan struct{}
	now      func() time.Time
}

// NewExecutor wires the executor to the platform adapter and element registry.
func NewExecutor(sys platform.SystemOperations, els *elements.Registry) *Executor {
	return &Executor{
		logger:   log.New(log.Writer(), "[MACROEXEC] ", log.LstdFlags),
		sys:      sys,
		elements: els,
		sem:      make(chan struct{}, 1),
		now:      time.Now,
	}
}

// SetClock overrides the time source for tests.
func (e *Executor) SetClock(now func() time.Time) { e.now = now }

// Execute runs the macro's actions in order against parent's scope.
// A timeout of zero applies DefaultExecuteTimeout.
func (e *Executor) Execute(ctx context.Context, macro *pb.Macro, params map[string]string, parent string, timeout time.Duration) error {
	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-e.sem }()

	mc, err := e.buildContext(macro, params, parent)
	if err != nil {
		return err
	}
	if timeout <= 0 {
		timeout = DefaultExecuteTimeout
	}
	deadline := e.now().Add(timeout)

	e.logger.Printf("executing %s (%d actions, parent=%s)", macro.Name, len(macro.Actions), parent)
	return e.runActions(ctx, mc, macro.Actions, deadline)
}

func (e *Executor) buildContext(macro *pb.Macro, params map[string]string, parent string) (*MacroContext, error) {
	mc := &MacroContext{
		Variables:  make(map[string]string),
		Parameters: make(map[string]string, len(params)),
		Parent:     parent,
	}
	for k, v := range params {
		mc.Parameters[k] = v
	}
	for _, decl := range macro.Parameters {
		if _, ok := mc.Parameters[decl.Name]; ok {
			continue
		}
		if decl.Required {
			return nil, apierr.RequiredField("parameters." + decl.Name)
		}
		if decl.DefaultValue != "" {
			mc.Parameters[decl.Name] = decl.DefaultValue
		}
	}
	if parent != "" && parent != names.Wildcard {
		pid, err := names.ParseApplication(parent)
		if err != nil {
			return nil, err
		}
		mc.Pid = pid
	}
	return mc, nil
}

func (e *Executor) runActions(ctx context.Context, mc *MacroContext, actions []*pb.MacroAction, deadline time.Time) error {
	for i, a := range actions {
		if e.now().After(deadline) {
			return apierr.Internal(apierr.ReasonTimeout, "macro deadline exceeded",
				map[string]string{"actionIndex": fmt.Sprint(i)})
		}
		if err := e.runAction(ctx, mc, a, deadline); err != nil {
			return err
		}
	}
	return nil
}

func (e *Executor) runAction(ctx context.Context, mc *MacroContext, a *pb.MacroAction, deadline time.Time) error {
	switch {
	case a.Input != nil:
		return e.runInput(ctx, mc, a.Input)
	case a.Wait != nil:
		return e.runWait(ctx, mc, a.Wait, deadline)
	case a.Conditional != nil:
		ok, err := e.eval(ctx, mc, a.Conditional.Condition)
		if err != nil {
			return err
		}
		if ok {
			return e.runActions(ctx, mc, a.Conditional.Then, deadline)
		}
		return e.runActions(ctx, mc, a.Conditional.Else, deadline)
	case a.Loop != nil:
		return e.runLoop(ctx, mc, a.Loop, deadline)
	case a.Assign != nil:
		return e.runAssign(mc, a.Assign)
	case a.MethodCall != nil:
		return e.runMethodCall(ctx, mc, a.MethodCall)
	default:
		return apierr.InvalidArgument(apierr.ReasonInvalidAction, "macro action has no variant set", nil)
	}
}

// runInput synthesizes the event directly, never animated.
func (e *Executor) runInput(ctx context.Context, mc *MacroContext, in *pb.InputAction) error {
	switch {
	case in.Click != nil:
		count := in.Click.Count
		if count <= 0 {
			count = 1
		}
		return apierr.Platform(e.sys.Click(ctx, in.Click.X, in.Click.Y, int32(in.Click.Button), count))
	case in.TypeText != nil:
		return apierr.Platform(e.sys.TypeText(ctx, mc.Substitute(in.TypeText.Text)))
	case in.KeyPress != nil:
		return apierr.Platform(e.sys.PressKey(ctx, in.KeyPress.Key, in.KeyPress.Modifiers))
	case in.Scroll != nil:
		return apierr.Platform(e.sys.Scroll(ctx, in.Scroll.X, in.Scroll.Y, in.Scroll.DeltaX, in.Scroll.DeltaY))
	case in.Drag != nil:
		d := in.Drag
		if err := e.sys.MouseDown(ctx, d.FromX, d.FromY, int32(pb.MouseButton_LEFT)); err != nil {
			return apierr.Platform(err)
		}
		if err := e.sys.MouseMove(ctx, d.ToX, d.ToY); err != nil {
			return apierr.Platform(err)
		}
		return apierr.Platform(e.sys.MouseUp(ctx, d.ToX, d.ToY, int32(pb.MouseButton_LEFT)))
	case in.MoveMouse != nil:
		return apierr.Platform(e.sys.MouseMove(ctx, in.MoveMouse.X, in.MoveMouse.Y))
	default:
		return apierr.InvalidArgument(apierr.ReasonInvalidAction, "input action has no variant set", nil)
	}
}

func (e *Executor) runWait(ctx context.Context, mc *MacroContext, w *pb.WaitAction, deadline time.Time) error {
	if w.Condition == nil {
		return e.sleep(ctx, time.Duration(w.DurationSeconds*float64(time.Second)), deadline)
	}
	timeout := defaultWaitTimeout
	if w.TimeoutSeconds > 0 {
		timeout = time.Duration(w.TimeoutSeconds * float64(time.Second))
	}
	waitUntil := e.now().Add(timeout)
	if waitUntil.After(deadline) {
		waitUntil = deadline
	}
	for {
		ok, err := e.eval(ctx, mc, w.Condition)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		if e.now().After(waitUntil) {
			return apierr.Internal(apierr.ReasonTimeout, "wait condition never held", nil)
		}
		if err := e.sleep(ctx, waitPollInterval, deadline); err != nil {
			return err
		}
	}
}

func (e *Executor) sleep(ctx context.Context, d time.Duration, deadline time.Time) error {
	if d <= 0 {
		return nil
	}
	if rem := deadline.Sub(e.now()); d > rem {
		d = rem
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Executor) runLoop(ctx context.Context, mc *MacroContext, l *pb.LoopAction, deadline time.Time) error {
	switch {
	case l.ForEach != nil:
		items, err := e.forEachItems(ctx, mc, l.ForEach)
		if err != nil {
			return err
		}
		for _, item := range items {
			if e.now().After(deadline) {
				return apierr.Internal(apierr.ReasonTimeout, "macro deadline exceeded", nil)
			}
			if l.ItemVariable != "" {
				mc.Variables[l.ItemVariable] = item
			}
			if err := e.runActions(ctx, mc, l.Body, deadline); err != nil {
				return err
			}
		}
		return nil
	case l.While != nil:
		for {
			if e.now().After(deadline) {
				return apierr.Internal(apierr.ReasonTimeout, "macro deadline exceeded", nil)
			}
			ok, err := e.eval(ctx, mc, l.While)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			if err := e.runActions(ctx, mc, l.Body, deadline); err != nil {
				return err
			}
		}
	default:
		for i := int32(0); i < l.Count; i++ {
			if e.now().After(deadline) {
				return apierr.Internal(apierr.ReasonTimeout, "macro deadline exceeded", nil)
			}
			if err := e.runActions(ctx, mc, l.Body, deadline); err != nil {
				return err
			}
		}
		return nil
	}
}

// forEachItems materializes the iteration source. Element matches bind the
// element's title (value when untitled), window matches bind the title, and
// literal lists split on newlines, falling back to commas.
func (e *Executor) forEachItems(ctx context.Context, mc *MacroContext, src *pb.ForEachSource) ([]string, error) {
	switch {
	case src.ElementSelector != "":
		els, err := e.findElements(ctx, mc, src.ElementSelector)
		if err != nil {
			return nil, err
		}
		items := make([]string, 0, len(els))
		for _, el := range els {
			if el.Title != "" {
				items = append(items, el.Title)
			} else {
				items = append(items, el.Value)
			}
		}
		return items, nil
	case src.WindowTitlePattern != "":
		re, err := regexp.Compile(src.WindowTitlePattern)
		if err != nil {
			return nil, apierr.InvalidArgument(apierr.ReasonInvalidSelector,
				"invalid window title pattern: "+err.Error(), nil)
		}
		wins, err := e.sys.ListWindows(ctx, mc.Pid)
		if err != nil {
			return nil, apierr.Platform(err)
		}
		var items []string
		for _, w := range wins {
			if re.MatchString(w.Title) {
				items = append(items, w.Title)
			}
		}
		return items, nil
	case src.Values != "":
		raw := src.Values
		sep := "\n"
		if !strings.Contains(raw, "\n") {
			sep = ","
		}
		parts := strings.Split(raw, sep)
		items := make([]string, 0, len(parts))
		for _, p := range parts {
			if t := strings.TrimSpace(p); t != "" {
				items = append(items, t)
			}
		}
		return items, nil
	default:
		return nil, apierr.InvalidArgument(apierr.ReasonInvalidAction, "for-each source has no variant set", nil)
	}
}

func (e *Executor) runAssign(mc *MacroContext, a *pb.AssignAction) error {
	if a.Variable == "" {
		return apierr.RequiredField("assign.variable")
	}
	switch {
	case a.Literal != nil:
		mc.Variables[a.Variable] = a.Literal.Value
	case a.Parameter != nil:
		mc.Variables[a.Variable] = mc.Parameters[a.Parameter.Name]
	case a.Expression != nil:
		mc.Variables[a.Variable] = mc.Substitute(a.Expression.Expression)
	case a.ElementAttribute != nil:
		return apierr.InvalidArgument(apierr.ReasonInvalidAction,
			"element-attribute assignment is not supported", nil)
	default:
		return apierr.InvalidArgument(apierr.ReasonInvalidAction, "assign action has no source set", nil)
	}
	return nil
}

func (e *Executor) runMethodCall(ctx context.Context, mc *MacroContext, call *pb.MethodCallAction) error {
	switch call.Method {
	case "ClickElement":
		id := call.Arguments["elementId"]
		if id == "" {
			return apierr.RequiredField("arguments.elementId")
		}
		entry, ok := e.elements.Get(id)
		if !ok {
			return apierr.NotFound(apierr.ReasonElementNotFound, id)
		}
		b := entry.Element.Bounds
		if b == nil || b.Width <= 0 || b.Height <= 0 {
			return apierr.FailedPrecondition(apierr.ReasonElementMissingBounds,
				"element has no usable bounds: "+id, nil)
		}
		return apierr.Platform(e.sys.Click(ctx, b.X+b.Width/2, b.Y+b.Height/2, int32(pb.MouseButton_LEFT), 1))
	case "TypeText":
		return apierr.Platform(e.sys.TypeText(ctx, mc.Substitute(call.Arguments["text"])))
	default:
		return apierr.InvalidArgument(apierr.ReasonInvalidAction,
			"unknown macro method: "+call.Method,
			map[string]string{"method": call.Method})
	}
}

// Conditions

func (e *Executor) eval(ctx context.Context, mc *MacroContext, c *pb.MacroCondition) (bool, error) {
	if c == nil {
		return false, apierr.RequiredField("condition")
	}
	switch {
	case c.ElementExists != nil:
		pid := c.ElementExists.Pid
		if pid == 0 {
			pid = mc.Pid
		}
		if pid == 0 {
			return false, nil
		}
		els, err := e.findElementsForPid(ctx, pid, c.ElementExists.Selector)
		if err != nil {
			return false, err
		}
		return len(els) > 0, nil
	case c.WindowExists != nil:
		re, err := regexp.Compile(c.WindowExists.TitlePattern)
		if err != nil {
			return false, apierr.InvalidArgument(apierr.ReasonInvalidSelector,
				"invalid window title pattern: "+err.Error(), nil)
		}
		pid := c.WindowExists.Pid
		if pid == 0 {
			pid = mc.Pid
		}
		wins, err := e.sys.ListWindows(ctx, pid)
		if err != nil {
			return false, apierr.Platform(err)
		}
		for _, w := range wins {
			if re.MatchString(w.Title) {
				return true, nil
			}
		}
		return false, nil
	case c.ApplicationRunning != nil:
		running, err := e.sys.IsApplicationRunning(ctx, c.ApplicationRunning.Identifier)
		if err != nil {
			return false, apierr.Platform(err)
		}
		return running, nil
	case c.VariableEquals != nil:
		v, ok := mc.Variables[c.VariableEquals.Variable]
		if !ok {
			v = mc.Parameters[c.VariableEquals.Variable]
		}
		return v == c.VariableEquals.Value, nil
	case c.Compound != nil:
		return e.evalCompound(ctx, mc, c.Compound)
	default:
		return false, apierr.InvalidArgument(apierr.ReasonInvalidAction, "condition has no variant set", nil)
	}
}

func (e *Executor) evalCompound(ctx context.Context, mc *MacroContext, comp *pb.CompoundCondition) (bool, error) {
	switch comp.Operator {
	case pb.CompoundOperator_AND:
		for _, c := range comp.Conditions {
			ok, err := e.eval(ctx, mc, c)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	case pb.CompoundOperator_OR:
		for _, c := range comp.Conditions {
			ok, err := e.eval(ctx, mc, c)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	case pb.CompoundOperator_NOT:
		if len(comp.Conditions) != 1 {
			return false, apierr.InvalidArgument(apierr.ReasonInvalidAction,
				fmt.Sprintf("NOT requires exactly one child, got %d", len(comp.Conditions)), nil)
		}
		ok, err := e.eval(ctx, mc, comp.Conditions[0])
		return !ok, err
	default:
		return false, apierr.InvalidArgument(apierr.ReasonInvalidEnumValue,
			"compound operator must be AND, OR or NOT", nil)
	}
}

func (e *Executor) findElements(ctx context.Context, mc *MacroContext, selector string) ([]platform.Element, error) {
	if mc.Pid == 0 {
		return nil, nil
	}
	return e.findElementsForPid(ctx, mc.Pid, selector)
}

func (e *Executor) findElementsForPid(ctx context.Context, pid int32, selector string) ([]platform.Element, error) {
	sel, err := ParseSelector(selector)
	if err != nil {
		return nil, err
	}
	els, err := e.sys.FindElements(ctx, pid, sel.Role, sel.Text, sel.TextContains, sel.RegexSource(), findLimit)
	if err != nil {
		return nil, apierr.Platform(err)
	}
	return els, nil
}
