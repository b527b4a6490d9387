package apperrors

// 回合错误码
const (
	CodeNotAllCardsMatchRank = iota + 1
	CodeNotAllCardsInHand
	CodeTooManyCardsInBook
	CodeTooFewCardsInBook
	CodeTooManyWildsInBook
	CodeNotEnoughMeld
	CodeMustKeepOneCardInHand
	CodeCanOnlyPickupBookable
	CodeDeckIsLockedNeedTwoInHand
	CodeNotEnoughCards
	CodeDiscardNotInHand
)

// TurnError 回合内动作被拒绝的错误，全部可恢复
type TurnError struct {
	Code    int
	Message string
}

func (e *TurnError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrNotAllCardsMatchRank      = &TurnError{Code: CodeNotAllCardsMatchRank, Message: "所出的牌与目标点数不符"}
	ErrNotAllCardsInHand         = &TurnError{Code: CodeNotAllCardsInHand, Message: "手牌中没有这些牌"}
	ErrTooManyCardsInBook        = &TurnError{Code: CodeTooManyCardsInBook, Message: "一组牌最多 7 张"}
	ErrTooFewCardsInBook         = &TurnError{Code: CodeTooFewCardsInBook, Message: "新开的一组牌至少 3 张"}
	ErrTooManyWildsInBook        = &TurnError{Code: CodeTooManyWildsInBook, Message: "组内万能牌必须少于普通牌"}
	ErrNotEnoughMeld             = &TurnError{Code: CodeNotEnoughMeld, Message: "首次亮牌分数未达本轮门槛"}
	ErrMustKeepOneCardInHand     = &TurnError{Code: CodeMustKeepOneCardInHand, Message: "手中必须保留至少一张牌"}
	ErrCanOnlyPickupBookable     = &TurnError{Code: CodeCanOnlyPickupBookable, Message: "弃牌堆顶不是可入组的牌"}
	ErrDeckIsLockedNeedTwoInHand = &TurnError{Code: CodeDeckIsLockedNeedTwoInHand, Message: "弃牌堆已锁定，需持有两张同点数的牌"}
	ErrNotEnoughCards            = &TurnError{Code: CodeNotEnoughCards, Message: "牌不够了"}
	ErrDiscardNotInHand          = &TurnError{Code: CodeDiscardNotInHand, Message: "策略始终未给出手中的牌"}
)
