package systems

import (
	"testing"

	"github.com/decker502/railspark/pkg/components"
	"github.com/decker502/railspark/pkg/ecs"
)

func TestCollisionThreshold(t *testing.T) {
	session := newTestSession()
	cs := NewCollisionSystem(session.EntityManager, session)

	// 火箭 40x40，中心在设计坐标 (600, 100)，阈值 = 0.8 * 40 = 32
	tests := []struct {
		name string
		tipX float64
		tipY float64
		want bool
	}{
		{"中心命中", 600, 100, true},
		{"距离31在阈值内", 631, 100, true},
		{"距离恰好32在阈值上", 632, 100, true},
		{"距离33在阈值外", 633, 100, false},
		{"垂直方向同样适用", 600, 131, true},
		{"远处", 100, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cs.Check(tt.tipX, tt.tipY)
			if got != tt.want {
				t.Errorf("Check(%v, %v) = %v, want %v", tt.tipX, tt.tipY, got, tt.want)
			}

			rocket, _ := ecs.GetComponent[*components.RocketComponent](session.EntityManager, session.RocketID)
			if rocket.Reached != tt.want {
				t.Errorf("rocket.Reached = %v, want %v", rocket.Reached, tt.want)
			}
			if rocket.Highlighted != tt.want {
				t.Errorf("rocket.Highlighted = %v, want %v", rocket.Highlighted, tt.want)
			}
		})
	}
}

func TestCollisionIsMemoryless(t *testing.T) {
	session := newTestSession()
	cs := NewCollisionSystem(session.EntityManager, session)

	if !cs.Check(600, 100) {
		t.Fatal("tip at rocket center should be reached")
	}
	// 移开后立刻翻回 false，没有迟滞
	if cs.Check(100, 100) {
		t.Error("reached must not be sticky")
	}
	if !cs.Check(600, 100) {
		t.Error("reached must come back when tip returns")
	}
}

func TestCollisionZeroSizeRocket(t *testing.T) {
	session := newTestSession()
	cs := NewCollisionSystem(session.EntityManager, session)

	rocket, _ := ecs.GetComponent[*components.RocketComponent](session.EntityManager, session.RocketID)
	rocket.HalfWidth = 0
	rocket.HalfHeight = 0

	// 零尺寸目标阈值为 0，即使位置完全重合也不算到达
	if cs.Check(600, 100) {
		t.Error("zero-size rocket must never be reached")
	}
}

func TestCollisionInvisibleRocket(t *testing.T) {
	session := newTestSession()
	cs := NewCollisionSystem(session.EntityManager, session)

	rocket, _ := ecs.GetComponent[*components.RocketComponent](session.EntityManager, session.RocketID)
	rocket.Reached = true
	rocket.Highlighted = true
	rocket.Visible = false

	if cs.Check(600, 100) {
		t.Error("invisible rocket must not be reached")
	}
	if rocket.Reached || rocket.Highlighted {
		t.Error("stale reached/highlight state must be cleared")
	}
}

func TestCollisionNoHighlightDuringIgnition(t *testing.T) {
	session := newTestSession()
	cs := NewCollisionSystem(session.EntityManager, session)

	rocket, _ := ecs.GetComponent[*components.RocketComponent](session.EntityManager, session.RocketID)
	rocket.Igniting = true

	// 点火序列进行中判定照常，但高亮不再点亮
	if !cs.Check(600, 100) {
		t.Error("proximity check itself still works during ignition")
	}
	if rocket.Highlighted {
		t.Error("highlight must stay off once ignition started")
	}
}
