package sash

import "math"

// SelectionModel chooses how list rows select.
type SelectionModel uint8

const (
	// SelectSingle keeps at most one row selected.
	SelectSingle SelectionModel = iota
	// SelectMulti toggles rows independently.
	SelectMulti
)

// SelectCb is fired after a row's selection changes through input. index is
// the row; selected is its new state.
type SelectCb func(l *List, index int, selected bool)

// List is the model behind a list-class widget: labeled rows with single or
// multi selection. The model survives widget storage moves; programmatic
// access to the rows goes through a tracker on the container.
type List struct {
	model    SelectionModel
	labels   []string
	selected []bool
	onSelect SelectCb
	track    Tracker
}

// NewList makes a list with the given rows.
func NewList(model SelectionModel, labels ...string) *List {
	return &List{
		model:    model,
		labels:   labels,
		selected: make([]bool, len(labels)),
	}
}

// OnSelect installs the selection callback.
func (l *List) OnSelect(cb SelectCb) *List {
	l.onSelect = cb
	return l
}

// Len returns the number of rows.
func (l *List) Len() int { return len(l.labels) }

// Label returns the label of one row.
func (l *List) Label(index int) string { return l.labels[index] }

// IsSelected reports one row's selection state.
func (l *List) IsSelected(index int) bool { return l.selected[index] }

// Selection returns the selected row indices in order.
func (l *List) Selection() []int {
	var out []int
	for i, sel := range l.selected {
		if sel {
			out = append(out, i)
		}
	}
	return out
}

// Select sets one row's selection programmatically, honoring the selection
// model, and mirrors the state onto the row widgets when the list is in a
// tree.
func (l *List) Select(index int, selected bool) {
	if index < 0 || index >= len(l.selected) {
		return
	}
	if selected && l.model == SelectSingle {
		for i := range l.selected {
			l.selected[i] = false
		}
	}
	l.selected[index] = selected
	l.syncRows()
}

// NewWidget makes the list-class widget: one item-class row per label, each
// spanning an equal horizontal band of the container. Single-selection rows
// act as a bullet group; multi-selection rows toggle.
func (l *List) NewWidget(lo Layout) Widget {
	w := NewWidget(ClassList, lo)
	w.Track(&l.track)
	n := len(l.labels)
	for i, label := range l.labels {
		top := -1 + 2*float64(i)/float64(n)
		bot := -1 + 2*float64(i+1)/float64(n)
		row := NewWidget(ClassItem, LayoutOf(Pos(-1, top), Pos(1, bot)))
		row.Text(label, 0, AlignLeft)
		if l.model == SelectSingle {
			row.data.Mark = MarkRound
			row.input.Action = ActionBullet
		} else {
			row.data.Mark = MarkCheck
			row.input.Action = ActionToggle
		}
		index := i
		row.input.OnClick = func(rw *Widget) {
			l.rowClicked(index, rw.data.Selected)
		}
		w.AddChild(row)
	}
	return w
}

// rowClicked folds a row widget's new state back into the model. The bullet
// continuation already cleared the sibling widgets for single selection.
func (l *List) rowClicked(index int, selected bool) {
	if l.model == SelectSingle {
		for i := range l.selected {
			l.selected[i] = false
		}
	}
	l.selected[index] = selected
	if l.onSelect != nil {
		l.onSelect(l, index, selected)
	}
}

// syncRows copies model state onto the row widgets.
func (l *List) syncRows() {
	w, err := l.track.Get()
	if err != nil {
		return
	}
	for i := range w.children {
		if i < len(l.selected) {
			w.children[i].data.Selected = l.selected[i]
		}
	}
}

// ============================================================================
// Drop-down
// ============================================================================

// DropDownList is a collapsed single-selection list. Its widget shows the
// current choice; striking it pushes a centered popup dialog of the rows,
// and choosing a row records the selection and pops the dialog.
type DropDownList struct {
	screen      *Screen
	labels      []string
	placeholder string
	selected    int
	onSelect    func(d *DropDownList, index int)
	face        Tracker
}

// NewDropDownList makes a drop-down over the given rows. The screen is
// where the popup is pushed; nothing is selected initially.
func NewDropDownList(s *Screen, labels ...string) *DropDownList {
	return &DropDownList{
		screen:      s,
		labels:      labels,
		placeholder: "...",
		selected:    -1,
	}
}

// Placeholder sets the face text shown before any selection.
func (d *DropDownList) Placeholder(text string) *DropDownList {
	d.placeholder = text
	return d
}

// OnSelect installs the selection callback.
func (d *DropDownList) OnSelect(cb func(d *DropDownList, index int)) *DropDownList {
	d.onSelect = cb
	return d
}

// Selected returns the chosen row index, or -1.
func (d *DropDownList) Selected() int { return d.selected }

// SetSelected records a choice programmatically and updates the face.
func (d *DropDownList) SetSelected(index int) {
	if index < -1 || index >= len(d.labels) {
		return
	}
	d.selected = index
	d.syncFace()
}

// NewWidget makes the dropDown-class face widget.
func (d *DropDownList) NewWidget(lo Layout) Widget {
	w := NewWidget(ClassDropDown, lo)
	w.Text(d.faceText(), 0, AlignLeft)
	w.Track(&d.face)
	w.AddMethod(DownEventMethod(func(x, y float64, self *Widget) EventUpCb {
		if self.data.Disabled || !self.data.Rect.Inside(x, y) {
			return nil
		}
		self.data.Selected = true
		return func(ux, uy float64, up bool) {
			if !up {
				self.data.Selected = self.data.Rect.Inside(ux, uy)
				return
			}
			self.data.Selected = false
			if self.data.Rect.Inside(ux, uy) {
				d.open()
			}
		}
	}))
	return w
}

func (d *DropDownList) faceText() string {
	if d.selected < 0 {
		return d.placeholder
	}
	return d.labels[d.selected]
}

func (d *DropDownList) syncFace() {
	if w, err := d.face.Get(); err == nil {
		w.data.Label = d.faceText()
	}
}

// open pushes the popup dialog listing the rows.
func (d *DropDownList) open() {
	if d.screen == nil || len(d.labels) == 0 {
		return
	}
	height := math.Min(0.8, 0.12*float64(len(d.labels)))
	dlg := NewWidget(ClassDialog, Centered(0.5, height))
	n := len(d.labels)
	for i, label := range d.labels {
		top := -1 + 2*float64(i)/float64(n)
		bot := -1 + 2*float64(i+1)/float64(n)
		row := NewWidget(ClassItem, LayoutOf(Pos(-1, top), Pos(1, bot)))
		row.Text(label, 0, AlignLeft)
		index := i
		row.OnClick(func(*Widget) {
			d.choose(index)
		})
		dlg.AddChild(row)
	}
	d.screen.PushDialog(dlg)
}

func (d *DropDownList) choose(index int) {
	d.selected = index
	d.syncFace()
	d.screen.PopDialog()
	if d.onSelect != nil {
		d.onSelect(d, index)
	}
}
