package template

// AbilityTemplates returns the built-in ability-feature templates keyed
// by target type. Bodies come from the Memoria Supporting Ability wiki
// patterns. Callers get deep copies and may mutate freely.
func AbilityTemplates() *Set {
	set := &Set{Name: "Built-in", Templates: make(map[Category][]*Template)}
	for _, t := range abilityCatalog {
		c := Category(t.catTag)
		set.Templates[c] = append(set.Templates[c], t.Template.Clone())
	}
	return set
}

type catalogTemplate struct {
	catTag string
	*Template
}

var abilityCatalog = []catalogTemplate{
	{"SA", &Template{
		ID:          "sa_auto_shell_protect",
		Label:       "Auto-Shell or Auto-Protect",
		Description: "Grants whichever auto-status is more beneficial based on current stats.",
		Scope:       "StatusInit",
		Blocks:      []string{"Condition"},
		Body: ">SA {sa_id} {comment}\n" +
			"StatusInit [code=Condition] Defence <= MagicDefence [/code] AutoStatus Protect\n" +
			"StatusInit [code=Condition] MagicDefence <= Defence [/code] AutoStatus Shell\n",
		Placeholders: map[string]string{
			"sa_id":   "Support Ability ID you are customising",
			"comment": "Clarify what the ability does",
		},
		Example: "##### Example use case #####\n" +
			">SA 0 Auto-Shell or Auto-Protect\n" +
			"StatusInit [code=Condition] Defence <= MagicDefence [/code] AutoStatus Protect\n" +
			"StatusInit [code=Condition] MagicDefence <= Defence [/code] AutoStatus Shell\n" +
			"##### End example #####",
		Notes: "Straight from the Supporting Ability wiki page.",
	}},
	{"SA", &Template{
		ID:          "sa_battlestart_preemptive",
		Label:       "Battle start odds",
		Description: "Configures preemptive/back-attack chances and command reach.",
		Scope:       "BattleStart",
		Blocks:      []string{"Condition", "Patch"},
		Body: ">SA {sa_id} {comment}\n" +
			"BattleStart PreemptivePriority +1\n" +
			"[code=Preemptive] {preemptive_value} [/code]\n" +
			"[code=BackAttack] {backattack_value} [/code]\n" +
			"Command EvenImmobilized\n" +
			"[code=Condition] IsAllyOfCaster [/code]\n" +
			"[code=IsShortRanged] false [/code]\n",
		Placeholders: map[string]string{
			"sa_id":            "Support Ability ID",
			"comment":          "Describe the behaviour",
			"preemptive_value": "Chance out of 255 for preemptive (eg. 128)",
			"backattack_value": "Chance out of 255 for back attack",
		},
		Example: "##### Example use case #####\n" +
			">SA 2 Preemptive setup\n" +
			"BattleStart PreemptivePriority +1\n" +
			"[code=Preemptive] 128 [/code]\n" +
			"[code=BackAttack] 128 [/code]\n" +
			"Command EvenImmobilized\n" +
			"[code=Condition] IsAllyOfCaster [/code]\n" +
			"[code=IsShortRanged] false [/code]\n" +
			"##### End example #####",
	}},
	{"SA", &Template{
		ID:          "sa_trance_guard",
		Label:       "Trance safety net",
		Description: "Consumes Trance to prevent fatal damage and apply statuses.",
		Scope:       "Ability",
		Blocks:      []string{"Condition", "CasterTrance"},
		Body: ">SA {sa_id} {comment}\n" +
			"Ability AsTarget WhenBattleScriptEnd\n" +
			"[code=Condition] {fatal_condition} [/code]\n" +
			"[code=TranceIncrease] {trance_delta} [/code]\n" +
			"[code=TargetPermanentStatus] {status_expression} [/code]\n" +
			"[code=HPDamage] 0 [/code]\n",
		Placeholders: map[string]string{
			"sa_id":             "Support Ability ID",
			"comment":           "Describe the safety behaviour",
			"fatal_condition":   "Condition similar to wiki example for fatal damage",
			"trance_delta":      "Amount to drain from Trance (negative value)",
			"status_expression": "CombineStatuses call to add statuses",
		},
		Example: "##### Example use case #####\n" +
			">SA 1 Last stand\n" +
			"Ability AsTarget WhenBattleScriptEnd\n" +
			"[code=Condition] HPDamage >= TargetHP && TargetTrance >= 128 && CasterIsPlayer != TargetIsPlayer\n" +
			"                && (EffectTargetFlags & CalcFlag_HpDamageOrHeal) == CalcFlag_HpAlteration [/code]\n" +
			"[code=TranceIncrease] -128 [/code]\n" +
			"[code=TargetPermanentStatus] CombineStatuses(TargetPermanentStatus, BattleStatus_Berserk, BattleStatus_Vanish, BattleStatus_Reflect) [/code]\n" +
			"[code=HPDamage] 0 [/code]\n" +
			"##### End example #####",
	}},
	{"SA", &Template{
		ID:          "sa_penetrator",
		Label:       "Armour penetration",
		Description: "Reduces enemy defence when the SA holder attacks.",
		Scope:       "Ability",
		Blocks:      []string{"Condition", "DefencePower"},
		Body: ">SA {sa_id} {comment}\n" +
			"Ability WhenCalcDamage EvenImmobilized\n" +
			"[code=Condition] {penetration_condition} [/code]\n" +
			"[code=DefencePower] DefencePower * {defence_multiplier} [/code]\n",
		Placeholders: map[string]string{
			"sa_id":                 "Support Ability ID (ex: 12)",
			"comment":               "Describe the penetration behaviour",
			"penetration_condition": "Condition for when the penetration applies",
			"defence_multiplier":    "Multiplier to apply to DefencePower (ex: 0.95)",
		},
		Example: "##### Example use case #####\n" +
			">SA 12 Penetrator ~~All attacks ignore 5% of target defence~~\n" +
			"Ability WhenCalcDamage EvenImmobilized\n" +
			"[code=Condition] CasterIsPlayer && !TargetIsPlayer && (EffectFlags & (BattleCalcFlags_Miss | BattleCalcFlags_Guard)) == 0 [/code]\n" +
			"[code=DefencePower] DefencePower * 0.95 [/code]\n" +
			"##### End example #####",
	}},
	{"SA_GLOBAL", &Template{
		ID:          "sa_global_weapon_effects",
		Label:       "Weapon-based global effects",
		Description: "Chains multiple equipment-driven effects into a single SA Global block.",
		Scope:       "Ability",
		Blocks:      []string{"Condition", "Patch"},
		Body: ">SA Global+ {global_comment}\n" +
			"StatusInit [code=Condition] {weapon_condition} [/code] InitialStatus {initial_status}\n" +
			"Ability AsTarget\n" +
			"[code=Condition] {counter_condition} [/code]\n" +
			"[code=Counter] {counter_ability} [/code]\n",
		Placeholders: map[string]string{
			"global_comment":    "Summary of what this global block handles",
			"weapon_condition":  "Check for the weapon/equipment ID",
			"initial_status":    "Status to apply at battle start",
			"counter_condition": "Condition describing when to counter",
			"counter_ability":   "Ability triggered as the counter",
		},
		Example: "##### Example use case #####\n" +
			">SA Global+ Weapon specials\n" +
			"StatusInit [code=Condition] WeaponId == RegularItem_Avenger [/code] InitialStatus Doom\n" +
			"Ability AsTarget\n" +
			"[code=Condition] TargetWeaponId == RegularItem_Defender && CheckAnyStatus(TargetCurrentStatus, BattleStatus_Defend) && IsCounterableCommand && CasterIsPlayer != TargetIsPlayer && (AbilityCategory & 8) != 0 [/code]\n" +
			"[code=Counter] BattleAbilityId_Attack [/code]\n" +
			"##### End example #####",
		Notes: "Continue the block with extra weapon checks as needed (Mace of Zeus MP cost, Rosetta Ring, etc.).",
	}},
	{"SA_GLOBAL", &Template{
		ID:          "sa_global_armor_pen",
		Label:       "Ability-based armour penetration",
		Description: "Reduces enemy defence for specific abilities without requiring an SA.",
		Scope:       "Ability",
		Blocks:      []string{"Condition", "DefencePower"},
		Body: ">SA Global+ {comment}\n" +
			"Ability WhenCalcDamage EvenImmobilized\n" +
			"[code=Condition] {ability_condition} [/code]\n" +
			"[code=DefencePower] DefencePower * {defence_multiplier} [/code]\n",
		Placeholders: map[string]string{
			"comment":            "Summary (ex: 10% armour pen)",
			"ability_condition":  "AbilityId checks or other gating logic",
			"defence_multiplier": "Multiplier to apply to DefencePower",
		},
		Example: "##### Example use case #####\n" +
			">SA Global+ ~~ 10% Armor Pen ~~\n" +
			"Ability WhenCalcDamage EvenImmobilized\n" +
			"[code=Condition] AbilityId == 123 [/code]\n" +
			"[code=DefencePower] DefencePower * 0.90 [/code]\n" +
			"##### End example #####",
	}},
	{"SA_GLOBAL_LAST", &Template{
		ID:          "sa_globallast_stat_bonus",
		Label:       "Equipment stat bonus",
		Description: "Applies final stat adjustments for specific accessories or armour.",
		Scope:       "Ability",
		Blocks:      []string{"Condition", "MaxHP"},
		Body: ">SA GlobalLast+ {label}\n" +
			"Ability EvenImmobilized\n" +
			"[code=Condition] {gear_condition} [/code]\n" +
			"[code={stat_block}] {stat_expression} [/code]\n",
		Placeholders: map[string]string{
			"label":           "Summary of the bonus (ex: Plate Armor HP boost)",
			"gear_condition":  "AccessoryId/ArmorId check",
			"stat_block":      "Stat keyword (MaxHP, MaxMP, Strength, etc.)",
			"stat_expression": "Formula adding or removing value",
		},
		Example: "##### Example use case #####\n" +
			">SA GlobalLast+ ~~ Lapiz Lazuli Stone +30mp ~~\n" +
			"Ability EvenImmobilized\n" +
			"[code=Condition] AccessoryId == 610 [/code]\n" +
			"[code=MaxMP] MaxMP + 30 [/code]\n" +
			"##### End example #####",
	}},
	{"SA_GLOBAL_ENEMY", &Template{
		ID:          "sa_global_enemy_scaler",
		Label:       "Enemy damage scaling",
		Description: "Scales enemy damage output based on player statistics.",
		Scope:       "Ability",
		Blocks:      []string{"AttackPower"},
		Body: ">SA GlobalEnemy+ {comment}\n" +
			"Ability WhenCalcDamage EvenImmobilized\n" +
			"[code=AttackPower] {attack_formula} [/code]\n",
		Placeholders: map[string]string{
			"comment":        "Summary of the scaling behaviour",
			"attack_formula": "Expression adjusting AttackPower (ex: Min((AttackPower * 2), (AttackPower * (1 + (TargetLevel/50)))))",
		},
		Example: "##### Example use case #####\n" +
			">SA GlobalEnemy+ ~~ Player damage taken scaler ~~\n" +
			"Ability WhenCalcDamage EvenImmobilized\n" +
			"[code=AttackPower] Min((AttackPower * 2), (AttackPower * (1 + (TargetLevel/50)))) [/code]\n" +
			"##### End example #####",
	}},
	{"SA_GLOBAL", &Template{
		ID:          "sa_global_jump_scaler",
		Label:       "Ability damage scaler",
		Description: "Boosts specific abilities using level/attribute based formulas.",
		Scope:       "Ability",
		Blocks:      []string{"Condition", "AttackPower"},
		Body: ">SA Global+ {comment}\n" +
			"Ability WhenCalcDamage EvenImmobilized\n" +
			"[code=Condition] {ability_condition} [/code]\n" +
			"[code=AttackPower] {attack_formula} [/code]\n",
		Placeholders: map[string]string{
			"comment":           "Summary of the scaling (ex: Jump DMG scaler)",
			"ability_condition": "AbilityId checks",
			"attack_formula":    "Formula boosting AttackPower",
		},
		Example: "##### Example use case #####\n" +
			">SA Global+ ~~ Jump DMG Scaler ~~\n" +
			"Ability WhenCalcDamage EvenImmobilized\n" +
			"[code=Condition] AbilityId == 185 || AbilityId == 186 [/code]\n" +
			"[code=AttackPower] AttackPower + ((AttackPower * (CasterLevel * 3 + CasterStrength)) / 200) [/code]\n" +
			"##### End example #####",
	}},
	{"SA_GLOBAL", &Template{
		ID:          "sa_global_regen_application",
		Label:       "Reapply status after effect changes",
		Description: "Reapplies statuses after switching a spell's effect script.",
		Scope:       "Ability",
		Blocks:      []string{"Condition", "CasterCurrentStatus"},
		Body: ">SA Global+ {comment}\n" +
			"Ability WhenBattleScriptEnd EvenImmobilized\n" +
			"[code=Condition] {ability_condition} [/code]\n" +
			"[code=CasterCurrentStatus] {status_expression} [/code]\n",
		Placeholders: map[string]string{
			"comment":           "Description (ex: Reis Wind Regen Application)",
			"ability_condition": "AbilityId checks",
			"status_expression": "CombineStatuses/RemoveStatuses expression",
		},
		Example: "##### Example use case #####\n" +
			">SA Global+ ~~ Reis Wind Regen Application ~~\n" +
			"Ability WhenBattleScriptEnd EvenImmobilized\n" +
			"[code=Condition] AbilityId == 118 [/code]\n" +
			"[code=CasterCurrentStatus] CombineStatuses(CasterCurrentStatus, BattleStatus_Regen) [/code]\n" +
			"##### End example #####",
	}},
	{"SA_GLOBAL", &Template{
		ID:          "sa_global_life_leech",
		Label:       "Convert damage to healing",
		Description: "Heals the caster for a portion of HP damage dealt by specified abilities.",
		Scope:       "Ability",
		Blocks:      []string{"Condition", "EffectCasterFlags", "CasterHPDamage"},
		Body: ">SA Global+ {comment}\n" +
			"Ability WhenBattleScriptEnd EvenImmobilized\n" +
			"[code=Condition] {ability_condition} [/code]\n" +
			"[code=EffectCasterFlags] CalcFlag_HpDamageOrHeal [/code]\n" +
			"[code=CasterHPDamage] {hp_expression} [/code]\n",
		Placeholders: map[string]string{
			"comment":           "Summary (ex: Lancer HP Leech)",
			"ability_condition": "AbilityId checks and hit flags",
			"hp_expression":     "Formula converting damage into healing",
		},
		Example: "##### Example use case #####\n" +
			">SA Global+ ~~ Lancer HP Leech ~~\n" +
			"Ability WhenBattleScriptEnd EvenImmobilized\n" +
			"[code=Condition] (AbilityId == 117) && CasterIsPlayer && !TargetIsPlayer && (EffectFlags & (BattleCalcFlags_Miss | BattleCalcFlags_Guard)) == 0 [/code]\n" +
			"[code=EffectCasterFlags] CalcFlag_HpDamageOrHeal [/code]\n" +
			"[code=CasterHPDamage] HPDamage / 5 [/code]\n" +
			"##### End example #####",
	}},
	{"SA_GLOBAL", &Template{
		ID:          "sa_global_magical_crit",
		Label:       "Enable magical critical hits",
		Description: "Allows magical abilities to crit and scales the resulting damage.",
		Scope:       "Ability",
		Blocks:      []string{"Condition", "EffectTargetFlags", "HPDamage"},
		Body: ">SA Global+ {comment}\n" +
			"Ability WhenBattleScriptStart EvenImmobilized\n" +
			"[code=Condition] {crit_condition} [/code]\n" +
			"[code=EffectTargetFlags] EffectTargetFlags | CalcFlag_Critical [/code]\n" +
			"Ability WhenBattleScriptEnd EvenImmobilized\n" +
			"[code=Condition] {crit_confirm_condition} [/code]\n" +
			"[code=HPDamage] {crit_damage_expression} [/code]\n",
		Placeholders: map[string]string{
			"comment":                "Summary (ex: Magical Crit BASE)",
			"crit_condition":         "Boolean expression that determines when to flag a crit",
			"crit_confirm_condition": "Expression ensuring only magical crits are boosted",
			"crit_damage_expression": "Damage scaling formula applied on crit",
		},
		Example: "##### Example use case #####\n" +
			">SA Global+ ~~ Magical Crit BASE ~~\n" +
			"Ability WhenBattleScriptStart EvenImmobilized\n" +
			"[code=Condition] ((AbilityCategory & 16) != 0) && (GetRandom(0, 100) < (CasterSpirit / 5)) [/code]\n" +
			"[code=EffectTargetFlags] EffectTargetFlags | CalcFlag_Critical [/code]\n" +
			"Ability WhenBattleScriptEnd EvenImmobilized\n" +
			"[code=Condition] ((AbilityCategory & 16) != 0) && (EffectTargetFlags & CalcFlag_Critical) != 0 [/code]\n" +
			"[code=HPDamage] HPDamage * 1.3 [/code]\n" +
			"##### End example #####",
	}},
	{"AA", &Template{
		ID:          "aa_upgrade_switch",
		Label:       "Ability upgrade switch",
		Description: "Swaps the executed ability ID when a condition is met.",
		Scope:       "Ability",
		Blocks:      []string{"Condition", "Patch"},
		Body: ">AA {ability_id} {comment}\n" +
			"[code=Condition] {upgrade_condition} [/code]\n" +
			"[code=Patch] {patch_expression} [/code]\n",
		Placeholders: map[string]string{
			"ability_id":        "Ability being modified",
			"comment":           "Plain-language summary",
			"upgrade_condition": "Boolean check (eg. HasSA(33))",
			"patch_expression":  "New ability ID or -1 to keep original",
		},
		Example: "##### Example use case #####\n" +
			">AA 11 Shell\n" +
			"[code=Condition] HasSA(33) [/code]\n" +
			"[code=Patch] HasSA(33) ? BattleAbilityId_MightyGuard : -1 [/code]\n" +
			"##### End example #####",
	}},
	{"AA", &Template{
		ID:          "aa_special_effect_by_level",
		Label:       "Change animation by level",
		Description: "Chooses a different special effect depending on the caster's level.",
		Scope:       "Ability",
		Blocks:      []string{"SpecialEffect"},
		Body: ">AA {ability_id} {comment}\n" +
			"[code=SpecialEffect] {special_effect_expression} [/code]\n",
		Placeholders: map[string]string{
			"ability_id":                "Ability ID being modified",
			"comment":                   "Summary (ex: Rebuke animation changer)",
			"special_effect_expression": "Ternary expression selecting the SpecialEffect ID",
		},
		Example: "##### Example use case #####\n" +
			">AA 35073 Rebuke - Animation changer\n" +
			"[code=SpecialEffect] CasterLevel > 50 ? 436 : (CasterLevel > 25 ? 125 : -1) [/code]\n" +
			"##### End example #####",
	}},
	{"AA", &Template{
		ID:          "aa_hide_until_unlocked",
		Label:       "Hide ability until unlocked",
		Description: "Hard-disables a spell or skill until the condition is true.",
		Scope:       "Ability",
		Blocks:      []string{"HardDisable"},
		Body: ">AA {ability_id} {comment}\n" +
			"[code=HardDisable] !({unlock_condition}) [/code]\n",
		Placeholders: map[string]string{
			"ability_id":       "Ability ID to hide",
			"comment":          "Description of the lock",
			"unlock_condition": "Expression that becomes true when the ability should appear",
		},
		Example: "##### Example use case #####\n" +
			">AA 11001 Cure\n" +
			"[code=HardDisable] !(HasSA(12000)) [/code]\n" +
			"##### End example #####",
	}},
	{"AA", &Template{
		ID:          "aa_disable_by_scenario",
		Label:       "Disable ability by scenario",
		Description: "Turns off an ability while a scenario or story flag is active.",
		Scope:       "Ability",
		Blocks:      []string{"Disable"},
		Body: ">AA {ability_id} {comment}\n" +
			"[code=Disable] {disable_expression} [/code]\n",
		Placeholders: map[string]string{
			"ability_id":         "Ability ID to control",
			"comment":            "Narrative description",
			"disable_expression": "Expression returning 1 to disable (eg. ScenarioCounter < 11100)",
		},
		Example: "##### Example use case #####\n" +
			">AA 11000 Materia Void placeholder\n" +
			"[code=Disable] 1 [/code]\n" +
			"##### End example #####",
		Notes: "Use HardDisable instead if the ability should vanish completely.",
	}},
	{"AA_GLOBAL", &Template{
		ID:          "aa_global_mp_discount",
		Label:       "MP discount by status",
		Description: "Adjusts MP cost for a range of commands when a condition is met.",
		Scope:       "Ability",
		Blocks:      []string{"Condition", "MPCost"},
		Body: ">AA Global+ {label}\n" +
			"[code=Condition] ({command_filter}) && {status_condition} [/code]\n" +
			"[code=MPCost] {mp_expression} [/code]\n",
		Placeholders: map[string]string{
			"label":            "Comment summarising the discount",
			"command_filter":   "CommandId checks",
			"status_condition": "Boolean status check",
			"mp_expression":    "Formula changing MPCost",
		},
		Example: "##### Example use case #####\n" +
			">AA Global+ MP Cost reduced in Trance - Red/Wht Mag and Summons\n" +
			"[code=Condition] ((CommandId == 9) || (CommandId == 16) || (CommandId == 17) || (CommandId == 18) || (CommandId == 19) || (CommandId == 20) || (CommandId == 21)) && CheckAnyStatus(CasterCurrentStatus, BattleStatus_Trance) [/code]\n" +
			"[code=MPCost] MPCost * 0.75 [/code]\n" +
			"##### End example #####",
	}},
}
