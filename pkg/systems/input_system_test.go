package systems

import (
	"errors"
	"math"
	"testing"

	"github.com/decker502/railspark/pkg/components"
	"github.com/decker502/railspark/pkg/config"
	"github.com/decker502/railspark/pkg/ecs"
	"github.com/decker502/railspark/pkg/game"
)

// recordingCapturer 记录捕获/释放调用，Release 可注入失败
type recordingCapturer struct {
	captures   int
	releases   int
	releaseErr error
}

func (c *recordingCapturer) Capture() { c.captures++ }
func (c *recordingCapturer) Release() error {
	c.releases++
	return c.releaseErr
}

func newTestInputSystem(session *game.Session, capturer PointerCapturer) (*InputSystem, *SparkSystem) {
	ss, _ := newTestSparkSystem(session)
	es := NewEffectSystem(session.EntityManager, session, game.NewAudioManager(nil))
	return NewInputSystem(session.EntityManager, session, ss, es, capturer), ss
}

func TestPressOutsideSparkIgnored(t *testing.T) {
	session := newTestSession()
	is, _ := newTestInputSystem(session, nil)

	is.HandlePress(400, 400)

	if is.IsDragging() {
		t.Error("press outside the spark hit area must not start a drag")
	}
}

func TestPressOnSparkStartsDragAndSnaps(t *testing.T) {
	session := newTestSession()
	capturer := &recordingCapturer{}
	is, _ := newTestInputSystem(session, capturer)

	// 火花在起点 (100,100)，命中区 26x26；按在略偏的位置上
	is.HandlePress(105, 95)

	if !is.IsDragging() {
		t.Fatal("press on the spark must start a drag session")
	}
	if capturer.captures != 1 {
		t.Errorf("captures = %d, want 1", capturer.captures)
	}

	spark, _ := ecs.GetComponent[*components.SparkComponent](session.EntityManager, session.SparkID)
	if !spark.Dragging {
		t.Error("spark component must carry the dragging flag")
	}
}

func TestMoveSnapsToNearestArcLength(t *testing.T) {
	session := newTestSession()
	is, _ := newTestInputSystem(session, nil)

	is.HandlePress(100, 100)
	// 指针拖到路径外的自由位置，弧长解析为最近采样点
	is.HandleMove(350, 250)

	spark, _ := ecs.GetComponent[*components.SparkComponent](session.EntityManager, session.SparkID)
	if math.Abs(spark.ArcLength-250) > config.SampleStep {
		t.Errorf("arc after snap = %v, want about 250 (within one sample step)", spark.ArcLength)
	}

	// 火花位置落在路径上而不是指针下
	pos, _ := ecs.GetComponent[*components.PositionComponent](session.EntityManager, session.SparkID)
	if math.Abs(pos.Y-100) > 1e-6 {
		t.Errorf("spark y = %v, want 100 (on the path, not under the pointer)", pos.Y)
	}
}

func TestMoveWithoutDragIgnored(t *testing.T) {
	session := newTestSession()
	is, ss := newTestInputSystem(session, nil)

	ss.SetPosition(100)
	is.HandleMove(500, 100)

	spark, _ := ecs.GetComponent[*components.SparkComponent](session.EntityManager, session.SparkID)
	if math.Abs(spark.ArcLength-100) > 1e-6 {
		t.Errorf("arc = %v, want unchanged 100 (move outside a drag session is ignored)", spark.ArcLength)
	}
}

func TestReleaseToleratesCapturerFailure(t *testing.T) {
	session := newTestSession()
	capturer := &recordingCapturer{releaseErr: errors.New("device already released")}
	is, _ := newTestInputSystem(session, capturer)

	is.HandlePress(100, 100)
	is.HandleRelease()

	if is.IsDragging() {
		t.Error("drag session must end even when capture release fails")
	}
	if capturer.releases != 1 {
		t.Errorf("releases = %d, want 1", capturer.releases)
	}

	spark, _ := ecs.GetComponent[*components.SparkComponent](session.EntityManager, session.SparkID)
	if spark.Dragging {
		t.Error("spark dragging flag must clear on release")
	}
}

func TestReleaseWithoutDragIgnored(t *testing.T) {
	session := newTestSession()
	capturer := &recordingCapturer{}
	is, _ := newTestInputSystem(session, capturer)

	is.HandleRelease()

	if capturer.releases != 0 {
		t.Error("release without an active drag must not touch the capturer")
	}
}
