package combat

// MonsterAI decides the monster's reply once the player has acted.
type MonsterAI struct{}

func NewMonsterAI() *MonsterAI { return &MonsterAI{} }

// Retaliate has a living monster attack the player. It reports whether an
// attack happened.
func (ai *MonsterAI) Retaliate(env *Env, monster, player *Character) bool {
	if !monster.IsAlive() {
		return false
	}
	monster.AttackTarget(env, player)
	return true
}
