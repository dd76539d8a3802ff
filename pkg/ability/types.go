package ability

import (
	"fmt"
	"strings"
)

// TargetType identifies which kind of ability an entry or template
// targets. It is a validated string key rather than a closed enum so
// template sets loaded from disk can carry types this build does not
// know about.
type TargetType string

const (
	SA            TargetType = "SA"
	SAGlobal      TargetType = "SA_GLOBAL"
	SAGlobalLast  TargetType = "SA_GLOBAL_LAST"
	SAGlobalEnemy TargetType = "SA_GLOBAL_ENEMY"
	AA            TargetType = "AA"
	AAGlobal      TargetType = "AA_GLOBAL"
)

// TypeInfo describes one ability target type for pickers and help text.
type TypeInfo struct {
	Key     TargetType
	Label   string
	Tooltip string
	Example string
	Aliases []string
}

// Scope is a feature scope an entry line may open (Permanent,
// BattleStart, StatusInit, ...).
type Scope struct {
	Key         string
	Label       string
	Description string
}

// Block is a [code=...] block kind usable inside an entry.
type Block struct {
	Key         string
	Label       string
	Description string
}

// DefaultTypes lists the known target types in picker order.
func DefaultTypes() []TypeInfo {
	return []TypeInfo{
		{
			Key:     SA,
			Label:   "Support Ability (SA)",
			Tooltip: "Standard support ability learned via gear. Matches the entries in Memoria's Supporting Ability wiki.",
			Example: "EXAMPLE:\n>SA 0 ~~ Auto-Shell or Auto-Protect ~~\nStatusInit [code=Condition] Defence <= MagicDefence [/code] AutoStatus Protect\nStatusInit [code=Condition] MagicDefence <= Defence [/code] AutoStatus Shell\n# Applies whichever auto-status best matches the current defences.",
			Aliases: []string{"sa", "support"},
		},
		{
			Key:     SAGlobal,
			Label:   "Support Ability Global (SA Global+)",
			Tooltip: "Global hook that always runs once per character. Often used for equipment or chain logic.",
			Example: "EXAMPLE:\n>SA Global+ ~~ Weapon-based effects bundle ~~\nStatusInit [code=Condition] WeaponId == RegularItem_Avenger [/code] InitialStatus Doom\nAbility AsTarget\n[code=Condition] TargetWeaponId == RegularItem_Defender && CheckAnyStatus(TargetCurrentStatus, BattleStatus_Defend) && IsCounterableCommand && CasterIsPlayer != TargetIsPlayer && (AbilityCategory & 8) != 0 [/code]\n[code=Counter] BattleAbilityId_Attack [/code]\n# Layers weapon passives regardless of the equipped support ability.",
			Aliases: []string{"saglobal", "sa-global"},
		},
		{
			Key:     SAGlobalLast,
			Label:   "Support Ability Global Last (SA GlobalLast+)",
			Tooltip: "Runs after all other SA Global entries. Ideal for final stat overrides like armour bonuses.",
			Example: "EXAMPLE:\n>SA GlobalLast+ ~~ Lapiz Lazuli MP bonus ~~\nAbility EvenImmobilized\n[code=Condition] AccessoryId == 610 [/code]\n[code=MaxMP] MaxMP + 30 [/code]\n# Runs after other global hooks to enforce the final MP bonus.",
			Aliases: []string{"sagloballast", "sa-global-last"},
		},
		{
			Key:     SAGlobalEnemy,
			Label:   "Support Ability Global Enemy (SA GlobalEnemy+)",
			Tooltip: "Applies global hooks to enemy actors. Useful for damage scaling or global debuffs.",
			Example: "EXAMPLE:\n>SA GlobalEnemy+ ~~ Player damage taken scaler ~~\nAbility WhenCalcDamage EvenImmobilized\n[code=AttackPower] Min((AttackPower * 2), (AttackPower * (1 + (TargetLevel/50)))) [/code]\n# Increases damage enemies deal based on the player's level.",
			Aliases: []string{"saglobalenemy", "sa-global-enemy"},
		},
		{
			Key:     AA,
			Label:   "Active Ability (AA)",
			Tooltip: "Battle commands (spells, skills, summons). Individual ability IDs.",
			Example: "EXAMPLE:\n>AA 11 ~~ Shell upgrades with Concentrate ~~\n[code=Patch] HasSA(33) ? BattleAbilityId_MightyGuard : -1 [/code]\n# Concentrate swaps Shell into Mighty Guard.",
			Aliases: []string{"aa", "active"},
		},
		{
			Key:     AAGlobal,
			Label:   "Active Ability Global (AA Global+)",
			Tooltip: "Global hook for every active ability. Use for system-wide tweaks like MP discounts.",
			Example: "EXAMPLE:\n>AA Global+ ~~ Trance MP discount ~~\n[code=Condition] CheckAnyStatus(CasterCurrentStatus, BattleStatus_Trance) [/code]\n[code=MPCost] MPCost * 0.75 [/code]\n# Lowers MP cost for command sets while in Trance.",
			Aliases: []string{"aaglobal", "aa-global"},
		},
	}
}

// TypeForAlias resolves a user-typed name to a target type.
func TypeForAlias(alias string) (TargetType, error) {
	needle := strings.ToLower(strings.TrimSpace(alias))
	for _, info := range DefaultTypes() {
		if strings.EqualFold(string(info.Key), needle) {
			return info.Key, nil
		}
		for _, a := range info.Aliases {
			if a == needle {
				return info.Key, nil
			}
		}
	}
	return "", fmt.Errorf("ability: unknown target type %q", alias)
}

// TypeExample returns the reference example for the type, or "" when the
// type is unknown.
func TypeExample(t TargetType) string {
	for _, info := range DefaultTypes() {
		if info.Key == t {
			return info.Example
		}
	}
	return ""
}

var scopeRegistry = map[TargetType][]Scope{
	SA: {
		{Key: "Permanent", Label: "Permanent", Description: "Applied on equipment refresh. Ideal for stat tweaks or unlock checks."},
		{Key: "BattleStart", Label: "BattleStart", Description: "Executes when a battle begins (preemptive/back-attack logic)."},
		{Key: "StatusInit", Label: "StatusInit", Description: "Applies statuses right after battle initialisation."},
		{Key: "Ability", Label: "Ability", Description: "Runs every time the attached ability participates in battle logic."},
		{Key: "Command", Label: "Command", Description: "Alters command behaviour before execution (targeting, reach, etc.)."},
		{Key: "BattleResult", Label: "BattleResult", Description: "Applies when battle rewards are calculated (bonus AP, drops, etc.)."},
	},
	SAGlobal: {
		{Key: "Permanent", Label: "Permanent", Description: "Initialises once per character regardless of equipped SAs."},
		{Key: "StatusInit", Label: "StatusInit", Description: "Applies statuses at battle start even without the SA equipped."},
		{Key: "Ability", Label: "Ability", Description: "Battle-time hook available to all characters for global logic."},
		{Key: "Command", Label: "Command", Description: "Adjusts command behaviour globally before execution."},
	},
	SAGlobalLast: {
		{Key: "Ability", Label: "Ability", Description: "Final pass after standard SA Global; useful for overriding earlier changes."},
		{Key: "Command", Label: "Command", Description: "Final command tweaks after other global logic has run."},
	},
	SAGlobalEnemy: {
		{Key: "Ability", Label: "Ability", Description: "Runs for enemy actors during ability processing."},
	},
	AA: {
		{Key: "Ability", Label: "Ability", Description: "Runs with the ability's effect (WhenCalcDamage, WhenEffectDone, etc.)."},
		{Key: "Command", Label: "Command", Description: "Adjusts menu entry behaviour before the ability fires (MP, targeting, etc.)."},
	},
	AAGlobal: {
		{Key: "Ability", Label: "Ability", Description: "Global battle hook for every active ability."},
	},
}

// ScopesFor lists the scopes valid for the target type, empty for
// unknown types.
func ScopesFor(t TargetType) []Scope {
	return append([]Scope(nil), scopeRegistry[t]...)
}

var blockRegistry = []Block{
	{Key: "Condition", Label: "Condition", Description: "Boolean gate that must be true for the other blocks to execute."},
	{Key: "HardDisable", Label: "Hard Disable", Description: "Hides the entry entirely while the expression is true."},
	{Key: "Disable", Label: "Disable", Description: "Greys out the command but leaves it visible."},
	{Key: "Patch", Label: "Patch", Description: "Rewrites constants such as AbilityId, Target, or MPCost."},
	{Key: "BanishSAByLvl", Label: "Banish SA By Lv", Description: "Hides support ability tiers until the given rank is reached."},
	{Key: "BanishAAByLvl", Label: "Banish AA By Lv", Description: "Active ability equivalent of BanishSAByLvl."},
	{Key: "MPCost", Label: "MP Cost", Description: "Adjusts the ability's MP consumption on the fly."},
	{Key: "CasterTrance", Label: "Caster Trance", Description: "Modifies the caster's Trance gauge when the effect ends."},
	{Key: "MaxHP", Label: "Max HP", Description: "Tweaks the character's maximum HP for the duration of the effect."},
	{Key: "MaxMP", Label: "Max MP", Description: "Tweaks the character's maximum MP for the duration of the effect."},
}

// Blocks lists every known block kind.
func Blocks() []Block {
	return append([]Block(nil), blockRegistry...)
}

// BlocksFor resolves block keys to their descriptions, skipping unknown
// keys the way the pickers expect.
func BlocksFor(keys []string) []Block {
	var out []Block
	for _, key := range keys {
		for _, b := range blockRegistry {
			if b.Key == key {
				out = append(out, b)
				break
			}
		}
	}
	return out
}
