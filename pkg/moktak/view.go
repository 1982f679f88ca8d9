package moktak

// SlotView 资源槽的只读快照
type SlotView struct {
	Status      SlotStatus
	ErrorDetail string
	HasAsset    bool
	Progress    float64 // 当前播放头进度 [0, 1]
	Animating   bool    // 动画就绪且正在推进
}

// View 协调器的只读快照，展示层每帧读取一次
type View struct {
	Mode     Mode
	State    PlayState
	HitCount int
	Slots    map[SlotKind]SlotView
	Toast    Toast

	// LaunchVisible 开场动画区域是否显示（显示期间隐藏交互区域）
	LaunchVisible  bool
	LaunchProgress float64
}

// Active 返回当前模式对应槽的快照
func (v View) Active() SlotView {
	return v.Slots[v.Mode.Slot()]
}

// View 生成当前状态快照
func (c *Coordinator) View() View {
	slots := make(map[SlotKind]SlotView, len(c.slots))
	for kind, slot := range c.slots {
		slots[kind] = SlotView{
			Status:      slot.status,
			ErrorDetail: slot.errorDetail,
			HasAsset:    slot.asset != nil,
			Progress:    slot.Progress(),
			Animating:   slot.Animating(),
		}
	}
	return View{
		Mode:           c.mode,
		State:          c.state,
		HitCount:       c.hitCount,
		Slots:          slots,
		Toast:          c.toast.state(),
		LaunchVisible:  c.launch.visible,
		LaunchProgress: c.slots[SlotLaunch].Progress(),
	}
}
