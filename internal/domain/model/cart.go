package model

import "time"

// カートはプロセス内だけで持つ（永続化しない。再起動で消える）。
// IDはUUID。所有者の概念はなく、トークンを知っていれば触れる。
type Cart struct {
	ID        string     `json:"id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"-"`
}
