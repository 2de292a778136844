package component

type HP struct {
	Value uint32
}

var HPComponent = NewComponent[HP]()

type Power struct {
	Value uint32
}

var PowerComponent = NewComponent[Power]()
