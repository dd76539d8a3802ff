package template

// SequenceTemplates returns the built-in battle-SFX sequence templates
// keyed by category. Examples reference the AlternateFantasy ef089
// sequences they were lifted from.
func SequenceTemplates() *Set {
	set := &Set{Name: "Individuals", Templates: make(map[Category][]*Template)}
	for _, t := range sequenceCatalog {
		c := Category(t.catTag)
		set.Templates[c] = append(set.Templates[c], t.Template.Clone())
	}
	return set
}

var sequenceCatalog = []catalogTemplate{
	{"Casting", &Template{
		ID:          "single_target_spell",
		Label:       "Single target spell flow",
		Description: "Channels, loads, plays and cleans up a single-target spell animation.",
		Body: "// {comment}\n" +
			"StartThread: Condition=IsSingleTarget ; Sync=True\n" +
			"\tLoadSFX: SFX={sfx_name} ; Reflect={reflect} ; UseCamera={use_camera}\n" +
			"\tWaitSFXLoaded: SFX={sfx_name} ; Reflect={reflect}\n" +
			"\tPlaySFX: SFX={sfx_name} ; Reflect={reflect}\n" +
			"\tWaitSFXDone: SFX={sfx_name} ; Reflect={reflect}\n" +
			"EndThread\n",
		Placeholders: map[string]string{
			"comment":    "Describe the effect",
			"sfx_name":   "Memoria SFX identifier",
			"reflect":    "True or False depending on reflect support",
			"use_camera": "True to use packaged camera data",
		},
		Example: "Example (AlternateFantasy-ef089)\n" +
			"StartThread: Condition=IsSingleTarget ; Sync=True\n" +
			"\tStartThread: Condition=AreCasterAndSelectedTargetsEnemies ; Sync=True\n" +
			"\t\tLoadSFX: SFX=Slow ; Reflect=True ; UseCamera=False\n" +
			"\t\tWaitSFXLoaded: SFX=Slow ; Reflect=True\n" +
			"\t\tPlaySFX: SFX=Slow ; Reflect=True\n" +
			"\t\tWaitSFXDone: SFX=Slow ; Reflect=True\n" +
			"\tEndThread\n" +
			"EndThread",
	}},
	{"Casting", &Template{
		ID:          "item_cast_split",
		Label:       "Different animation for items",
		Description: "Split the sequence depending on whether the command comes from an item or ability.",
		Body: "StartThread: Condition=ItemUseId == 255 ; Sync=True\n" +
			"\tPlayAnimation: Char=Caster ; Anim={ability_anim}\n" +
			"\tWaitAnimation: Char=Caster\n" +
			"EndThread\n" +
			"StartThread: Condition=ItemUseId != 255 ; Sync=True\n" +
			"\tPlayAnimation: Char=Caster ; Anim={item_anim}\n" +
			"\tWaitAnimation: Char=Caster\n" +
			"EndThread\n",
		Placeholders: map[string]string{
			"ability_anim": "Animation when casting as an ability",
			"item_anim":    "Animation when casting via an item",
		},
		Example: "Example (AlternateFantasy-ef089)\n" +
			"StartThread: Condition=ItemUseId == 255 ; Sync=True\n" +
			"\tPlayAnimation: Char=Caster ; Anim=MP_IDLE_TO_CHANT\n" +
			"\tWaitAnimation: Char=Caster\n" +
			"\tPlayAnimation: Char=Caster ; Anim=MP_CHANT ; Loop=True\n" +
			"EndThread\n" +
			"StartThread: Condition=ItemUseId != 255 ; Sync=True\n" +
			"\tPlayAnimation: Char=Caster ; Anim=MP_ITEM1\n" +
			"\tWaitAnimation: Char=Caster\n" +
			"EndThread",
	}},
	{"Threads", &Template{
		ID:          "target_loop",
		Label:       "Per-target loop thread",
		Description: "Iterates over all targets to apply a repeated effect with spacing.",
		Body: "StartThread: TargetLoop=True ; Chain=True ; Sync=True\n" +
			"\tLoadSFX: SFX={sfx_name} ; Reflect={reflect}\n" +
			"\tWaitSFXLoaded: SFX={sfx_name} ; Reflect={reflect}\n" +
			"\tPlaySFX: SFX={sfx_name} ; Reflect={reflect}\n" +
			"\tWait: Time={wait_ticks}\n" +
			"EndThread\n",
		Placeholders: map[string]string{
			"sfx_name":   "Memoria SFX identifier",
			"reflect":    "True or False",
			"wait_ticks": "Number of frames (1/30th seconds) to wait between targets",
		},
		Example: "Example (AlternateFantasy-ef089)\n" +
			"StartThread: TargetLoop=True ; Chain=True ; Sync=True\n" +
			"\tLoadSFX: SFX=Haste ; Reflect=True ; UseCamera=False\n" +
			"\tWaitSFXLoaded: SFX=Haste ; Reflect=True\n" +
			"\tPlaySFX: SFX=Haste ; Reflect=True\n" +
			"\tWait: Time=10\n" +
			"EndThread",
	}},
	{"Movement", &Template{
		ID:          "position_swap",
		Label:       "Caster step in/out",
		Description: "Moves the caster forward for animations then retreats.",
		Body: "StartThread: Condition=CasterRow == 0 && AreCasterAndSelectedTargetsEnemies ; Sync=True\n" +
			"\tMoveToPosition: Char=Caster ; RelativePosition=(0, 0, {forward_z}) ; Anim={forward_anim}\n" +
			"\tWaitMove: Char=Caster\n" +
			"EndThread\n" +
			"// ... play your effect threads here ...\n" +
			"StartThread: Condition=CasterRow == 0 && AreCasterAndSelectedTargetsEnemies ; Sync=True\n" +
			"\tMoveToPosition: Char=Caster ; RelativePosition=(0, 0, {back_z}) ; Anim={back_anim}\n" +
			"\tWaitMove: Char=Caster\n" +
			"EndThread\n",
		Placeholders: map[string]string{
			"forward_z":    "Positive Z offset to step forward",
			"back_z":       "Negative Z offset returning to idle spot",
			"forward_anim": "Animation to use when stepping forward",
			"back_anim":    "Animation to use when stepping back",
		},
		Example: "Example (AlternateFantasy-ef089)\n" +
			"StartThread: Condition=CasterRow == 0 && AreCasterAndSelectedTargetsEnemies ; Sync=True\n" +
			"\tMoveToPosition: Char=Caster ; RelativePosition=(0, 0, 400) ; Anim=MP_STEP_FORWARD\n" +
			"\tWaitMove: Char=Caster\n" +
			"EndThread\n" +
			"...\n" +
			"StartThread: Condition=CasterRow == 0 && AreCasterAndSelectedTargetsEnemies ; Sync=True\n" +
			"\tMoveToPosition: Char=Caster ; RelativePosition=(0, 0, -400) ; Anim=MP_STEP_BACK\n" +
			"\tWaitMove: Char=Caster\n" +
			"EndThread",
	}},
	{"Reflect", &Template{
		ID:          "setup_reflect_bundle",
		Label:       "Setup reflect and cleanup",
		Description: "Initialises reflect, plays a mirrored SFX, and resolves the channel.",
		Body: "SetupReflect: Delay={reflect_delay}\n" +
			"StartThread: Condition={condition} ; Sync=True\n" +
			"\tLoadSFX: SFX={sfx_name} ; Reflect=True\n" +
			"\tWaitSFXLoaded: SFX={sfx_name} ; Reflect=True\n" +
			"\tPlaySFX: SFX={sfx_name} ; Reflect=True\n" +
			"\tWaitSFXDone: SFX={sfx_name} ; Reflect=True\n" +
			"EndThread\n" +
			"ActivateReflect\n" +
			"WaitReflect\n",
		Placeholders: map[string]string{
			"reflect_delay": "Use SFXLoaded or a Wait expression to delay reflect activation",
			"condition":     "Thread condition, e.g. IsSingleTarget",
			"sfx_name":      "Memoria SFX identifier to mirror",
		},
		Example: "Example (AlternateFantasy-ef089)\n" +
			"SetupReflect: Delay=SFXLoaded\n" +
			"StartThread: Condition=IsSingleTarget ; Sync=True\n" +
			"\tLoadSFX: SFX=Slow ; Reflect=True ; UseCamera=False\n" +
			"\tWaitSFXLoaded: SFX=Slow ; Reflect=True\n" +
			"\tPlaySFX: SFX=Slow ; Reflect=True\n" +
			"\tWaitSFXDone: SFX=Slow ; Reflect=True\n" +
			"EndThread\n" +
			"ActivateReflect\n" +
			"WaitReflect",
	}},
	{"Movement", &Template{
		ID:          "caster_turn_and_return",
		Label:       "Turn, engage, and reset",
		Description: "Turns the caster toward the targets, closes distance, then returns to idle position.",
		Body: "Turn: Char=Caster ; BaseAngle=AllTargets ; Time={turn_time}\n" +
			"WaitTurn: Char=Caster\n" +
			"MoveToTarget: Char=Caster ; Target=AllTargets ; Time={move_time} ; Distance={distance}\n" +
			"WaitMove: Char=Caster\n" +
			"// ... perform attack actions here ...\n" +
			"Turn: Char=Caster ; BaseAngle=Default ; Time={return_turn}\n" +
			"MoveToPosition: Char=Caster ; AbsolutePosition=Default ; Time={return_time}\n" +
			"WaitMove: Char=Caster\n",
		Placeholders: map[string]string{
			"turn_time":   "Frames to align with the target",
			"move_time":   "Frames to close the gap",
			"distance":    "Forward offset in world units",
			"return_turn": "Frames to face forward again",
			"return_time": "Frames to return to home position",
		},
		Example: "Example (AlternateFantasy-ef089)\n" +
			"StartThread: Condition=CasterRow == 0 && AreCasterAndSelectedTargetsEnemies ; Sync=True\n" +
			"\tMoveToPosition: Char=Caster ; RelativePosition=(0, 0, 400) ; Anim=MP_STEP_FORWARD\n" +
			"\tWaitMove: Char=Caster\n" +
			"EndThread\n" +
			"...\n" +
			"StartThread: Condition=CasterRow == 0 && AreCasterAndSelectedTargetsEnemies ; Sync=True\n" +
			"\tMoveToPosition: Char=Caster ; RelativePosition=(0, 0, -400) ; Anim=MP_STEP_BACK\n" +
			"\tWaitMove: Char=Caster\n" +
			"EndThread",
	}},
	{"Messaging", &Template{
		ID:          "status_message",
		Label:       "Battle log status message",
		Description: "Displays a message banner with the caster and waits before continuing.",
		Body: "Message: Text={text} ; Priority=1 ; Title=True ; Reflect={reflect}\n" +
			"Wait: Time={wait_ticks}\n",
		Placeholders: map[string]string{
			"text":       "e.g. [CastName] or a literal string",
			"reflect":    "True to mirror for reflect targets",
			"wait_ticks": "Duration to leave the banner visible",
		},
		Example: "Example (AlternateFantasy-ef089)\n" +
			"Message: Text=[CastName] ; Priority=1 ; Title=True ; Reflect=True\n" +
			"Wait: Time=10",
		Notes: "Use literal strings in quotes to show custom text, or a token like [ItemName].",
	}},
}
