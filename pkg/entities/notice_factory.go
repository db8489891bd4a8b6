package entities

import (
	"github.com/decker502/railspark/pkg/components"
	"github.com/decker502/railspark/pkg/config"
	"github.com/decker502/railspark/pkg/ecs"
)

// NewNoticeEntity 创建短暂提示实体，倒计时结束后自动销毁
func NewNoticeEntity(manager *ecs.EntityManager, text string) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.NoticeComponent{
		Text:        text,
		RemainingMs: config.NoticeDurationMillis,
	})

	return id
}
