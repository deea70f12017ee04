package model

// カートの明細
// 追加時点の名前と価格を必ず保存。
// Quantity は常に 1 以上。0 になった明細はカートから消す。
type CartItem struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
}
