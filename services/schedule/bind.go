package schedule

import (
	"strings"

	"homeroom/models"
	"homeroom/utils"

	"time"
)

// scheduleClass converts a configured class to its schedule value type.
func scheduleClass(c models.Class) models.ScheduleClass {
	return models.ScheduleClass{
		Name:     c.Name,
		Teacher:  c.Teacher,
		Type:     c.Type,
		Block:    c.Block,
		Color:    c.Color,
		TextDark: c.TextDark,
	}
}

// placeholderClass synthesizes a class for a block the user has not
// configured. The color derives from the block letter, so an unconfigured
// block always renders the same way.
func placeholderClass(block string) models.ScheduleClass {
	var name string
	if len(block) == 1 {
		name = "Block " + strings.ToUpper(block)
	} else {
		name = strings.ToUpper(block[:1]) + block[1:]
	}
	color := utils.ClassColor(block)
	return models.ScheduleClass{
		Name:     name,
		Type:     models.ClassTypeOther,
		Block:    block,
		Color:    color,
		TextDark: utils.TextIsDark(color),
	}
}

// BindTemplate attaches classes to a block template, producing a first-pass
// schedule for the given date. Configured classes are looked up by block
// letter; unconfigured blocks get a generated placeholder. Template ordering
// is preserved.
func BindTemplate(template []models.BlockDescriptor, byBlock map[string]models.Class, date time.Time) ([]models.ScheduleEntry, error) {
	entries := make([]models.ScheduleEntry, 0, len(template))
	for _, b := range template {
		start, err := blockTime(date, b.Start)
		if err != nil {
			return nil, err
		}
		end, err := blockTime(date, b.End)
		if err != nil {
			return nil, err
		}

		var class models.ScheduleClass
		if c, ok := byBlock[b.Block]; ok {
			class = scheduleClass(c)
		} else {
			class = placeholderClass(b.Block)
		}
		entries = append(entries, models.ScheduleEntry{Class: class, Start: start, End: end})
	}
	return entries, nil
}

// classesByBlock indexes a user's configured classes by block letter. When
// two classes claim the same block the first one wins.
func classesByBlock(classes []models.Class) map[string]models.Class {
	byBlock := make(map[string]models.Class, len(classes))
	for _, c := range classes {
		if _, ok := byBlock[c.Block]; !ok {
			byBlock[c.Block] = c
		}
	}
	return byBlock
}
