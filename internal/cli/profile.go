package cli

import (
	"fmt"
	"math"
)

type ProfileCmd struct {
	Name *string `help:"Set the profile name."`
	Bio  *string `help:"Set the profile bio."`
}

func (c *ProfileCmd) Run(ctx *Context) error {
	if c.Name != nil || c.Bio != nil {
		state := ctx.Controller.State()
		name := state.User.Name
		bio := state.User.Bio
		if c.Name != nil {
			name = *c.Name
		}
		if c.Bio != nil {
			bio = *c.Bio
		}
		ctx.Controller.UpdateProfile(name, bio)
		fmt.Println("Profile updated!")
		return nil
	}

	state := ctx.Controller.State()
	fmt.Printf("Name:    %s\n", state.User.Name)
	fmt.Printf("Bio:     %s\n", state.User.Bio)
	fmt.Printf("Credits: %d\n", state.User.Credits)

	avatar := "default"
	if state.User.AvatarURL != "" {
		avatar = fmt.Sprintf("custom (%d bytes)", len(state.User.AvatarURL))
	}
	fmt.Printf("Avatar:  %s\n", avatar)

	fmt.Printf("\nDays tracked: %d\n", len(state.History))
	if len(state.History) > 0 {
		total := 0
		for _, record := range state.History {
			total += record.Score
		}
		avg := int(math.Round(float64(total) / float64(len(state.History))))
		fmt.Printf("Avg score:    %d\n", avg)
	}
	return nil
}
