package sash

// Stock widget constructors. Each returns a plain value ready to hand to
// AddChild or use as a panel root; behavior comes from the widget's class
// and input action, so hosts can compose their own variants the same way.

// Panel makes an inert container.
func Panel(lo Layout, children ...Widget) Widget {
	w := NewWidget(ClassPanel, lo)
	for _, c := range children {
		w.AddChild(c)
	}
	return w
}

// Label makes a non-interactive text widget.
func Label(lo Layout, text string) Widget {
	w := NewWidget(ClassLabel, lo)
	w.Text(text, 0, AlignCenter)
	return w
}

// PushButton makes a click widget: the callback fires when a pointer-down
// on the button is released inside it.
func PushButton(lo Layout, text string, cb ClickCb) Widget {
	w := NewWidget(ClassPushButton, lo)
	w.Text(text, 0, AlignCenter)
	w.OnClick(cb)
	return w
}

// CheckBox makes a toggle widget carrying a check mark.
func CheckBox(lo Layout, text string, cb ClickCb) Widget {
	w := NewWidget(ClassCheckBox, lo)
	w.Text(text, 0, AlignLeft)
	w.data.Mark = MarkCheck
	w.input.Action = ActionToggle
	w.input.OnClick = cb
	return w
}

// BulletButton makes an exclusive-selection widget: selecting it clears
// every other bullet among its siblings.
func BulletButton(lo Layout, text string, cb ClickCb) Widget {
	w := NewWidget(ClassBulletButton, lo)
	w.Text(text, 0, AlignLeft)
	w.data.Mark = MarkRound
	w.input.Action = ActionBullet
	w.input.OnClick = cb
	return w
}

// Dialog makes a dialog-class container for Screen.PushDialog.
func Dialog(lo Layout, children ...Widget) Widget {
	w := NewWidget(ClassDialog, lo)
	for _, c := range children {
		w.AddChild(c)
	}
	return w
}

// Canvas makes a host-painted region: paint overrides drawing and down, if
// non-nil, overrides pointer handling.
func Canvas(lo Layout, paint DrawMethod, down DownEventMethod) Widget {
	w := NewWidget(ClassCanvas, lo)
	if paint != nil {
		w.AddMethod(paint)
	}
	if down != nil {
		w.AddMethod(down)
	}
	return w
}
