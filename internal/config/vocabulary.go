package config

// DefaultVocabulary returns the built-in bilingual suggestion vocabulary for
// the traditional-crafts domain. Deployments override it through the
// suggestions section of the config file; declaration order is the order
// suggestions are returned in.
func DefaultVocabulary() []string {
	return []string{
		"woodworking",
		"木工",
		"traditional woodworking",
		"ceramics",
		"陶瓷",
		"handmade ceramics",
		"pottery",
		"陶藝",
		"bamboo weaving",
		"竹編",
		"calligraphy",
		"書法",
		"paper cutting",
		"剪紙",
		"embroidery",
		"刺繡",
		"lacquerware",
		"漆器",
		"tea ceremony",
		"茶道",
		"mahjong carving",
		"麻雀牌雕刻",
		"neon sign making",
		"霓虹燈",
		"cheongsam tailoring",
		"長衫",
		"porcelain painting",
		"廣彩",
		"bird cage making",
		"雀籠",
	}
}
