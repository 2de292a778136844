package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/milk9111/burrow/collision"
	"github.com/milk9111/burrow/ecs"
	"github.com/milk9111/burrow/ecs/component"
	"github.com/milk9111/burrow/ecs/entity"
	"github.com/milk9111/burrow/levels"
	"github.com/milk9111/burrow/logger"
	"github.com/milk9111/burrow/prefabs"
	"github.com/sirupsen/logrus"
)

func main() {
	levelName := flag.String("level", "", "check only this level (default: every embedded level)")
	draw := flag.Bool("draw", false, "print an ASCII map of each level")
	flag.Parse()

	logger.Init("", "")

	names := []string{*levelName}
	if *levelName == "" {
		var err error
		names, err = embeddedLevels()
		if err != nil {
			logger.Log.WithError(err).Fatal("levelcheck: list levels")
		}
	}

	specs, err := prefabs.LoadAll()
	if err != nil {
		logger.Log.WithError(err).Fatal("levelcheck: load prefabs")
	}

	failed := 0
	for _, name := range names {
		lvl, problems, err := check(name, specs)
		fields := logrus.Fields{"level": name}
		switch {
		case err != nil:
			logger.Log.WithFields(fields).WithError(err).Error("levelcheck: invalid")
			failed++
			continue
		case len(problems) > 0:
			for _, p := range problems {
				logger.Log.WithFields(fields).Error("levelcheck: " + p)
			}
			failed++
		default:
			logger.Log.WithFields(fields).Info("levelcheck: ok")
		}
		if *draw {
			render(os.Stdout, lvl)
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func embeddedLevels() ([]string, error) {
	var names []string
	err := fs.WalkDir(levels.LevelsFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".yaml") {
			names = append(names, strings.TrimSuffix(path, ".yaml"))
		}
		return nil
	})
	sort.Strings(names)
	return names, err
}

// check builds the level and reports any two colliders that overlap on load,
// such as an entity placed inside a wall. Such overlaps would fire contact
// events on the first frame.
func check(name string, specs *prefabs.Specs) (*levels.Level, []string, error) {
	lvl, err := levels.Load(name)
	if err != nil {
		return nil, nil, err
	}
	w := ecs.NewWorld()
	cw := entity.NewCollisionWorld(lvl)
	if _, err := entity.LoadLevelToWorld(w, cw, lvl, specs); err != nil {
		return lvl, nil, err
	}

	problems := checkOwners(w, cw)
	for _, ev := range cw.Step() {
		problems = append(problems, fmt.Sprintf("%s at %v overlaps %s at %v on load",
			cw.Group(ev.A), cw.Position(ev.A), cw.Group(ev.B), cw.Position(ev.B)))
	}
	if lvl.Next != "" {
		if _, err := levels.Load(lvl.Next); err != nil {
			problems = append(problems, fmt.Sprintf("next level %q: %v", lvl.Next, err))
		}
	}
	return lvl, problems, nil
}

// checkOwners reports entities whose collider handle and the collider's owner
// disagree, and colliders no entity accounts for.
func checkOwners(w *ecs.World, cw *collision.World) []string {
	var problems []string
	colliders := 0
	for _, e := range ecs.Entities(w) {
		c, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
		if !ok {
			continue
		}
		colliders++
		switch {
		case !cw.Contains(c.Handle):
			problems = append(problems, fmt.Sprintf("entity %s has dead collider %s", e, c.Handle))
		case cw.Owner(c.Handle) != collision.Owner(e):
			problems = append(problems, fmt.Sprintf("entity %s collider %s is owned by %d", e, c.Handle, cw.Owner(c.Handle)))
		}
	}
	if colliders != cw.Len() {
		problems = append(problems, fmt.Sprintf("%d colliders but %d entities with colliders", cw.Len(), colliders))
	}
	return problems
}

var glyphs = map[string]byte{
	"player": '@',
	"food":   '*',
	"exit":   '>',
	"enemy":  's',
}

func render(out io.Writer, lvl *levels.Level) {
	rows := make([][]byte, lvl.Height())
	for y, line := range lvl.Tiles {
		rows[y] = make([]byte, len(line))
		for x, id := range line {
			rows[y][x] = '.'
			if id != 0 {
				rows[y][x] = '#'
			}
		}
	}
	for _, e := range lvl.Entities {
		rows[e.Y][e.X] = glyphs[strings.ToLower(e.Type)]
	}
	fmt.Fprintf(out, "%s -> %s\n", lvl.Name, lvl.Next)
	for _, row := range rows {
		fmt.Fprintln(out, string(row))
	}
}
