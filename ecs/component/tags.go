package component

type WallTag struct{}

var WallTagComponent = NewComponent[WallTag]()

type ExitTag struct{}

var ExitTagComponent = NewComponent[ExitTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()
