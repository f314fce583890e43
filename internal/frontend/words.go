package frontend

// 以下词表构建后只读。

var (
	// mustNotNeutral 中的词永远不读轻声。
	mustNotNeutral = wordSet(
		"男子", "女子", "分子", "原子", "量子", "莲子", "石子", "瓜子", "电子",
		"人人", "虎虎", "幺幺", "干嘛", "学子", "哈哈", "数数", "袅袅", "局地",
		"以下", "娃哈哈", "花花草草", "留得", "耕地", "想想", "熙熙", "攘攘",
		"卵子", "死死", "冉冉", "恳恳", "佼佼", "吵吵", "打打", "考考", "整整",
		"莘莘", "落地", "算子", "家家户户", "青青",
	)
	// mustNeutral 中的词末字读轻声，也用来匹配词的末两字。
	mustNeutral = wordSet(
		"麻烦", "麻利", "鸳鸯", "高粱", "骨头", "骆驼", "马虎", "首饰", "馒头",
		"馄饨", "风筝", "难为", "队伍", "阔气", "闺女", "门道", "锄头", "铺盖",
		"铃铛", "铁匠", "钥匙", "里脊", "里头", "部分", "那么", "道士", "造化",
		"迷糊", "连累", "这么", "这个", "运气", "过去", "软和", "转悠", "踏实",
		"跳蚤", "跟头", "趔趄", "财主", "豆腐", "讲究", "记性", "记号", "认识",
		"规矩", "见识", "裁缝", "补丁", "衣裳", "衣服", "衙门", "街坊", "行李",
		"行当", "蛤蟆", "蘑菇", "薄荷", "葫芦", "葡萄", "萝卜", "荸荠", "苗条",
		"苗头", "苍蝇", "芝麻", "舒服", "舒坦", "舌头", "自在", "膏药", "脾气",
		"脑袋", "脊梁", "能耐", "胳膊", "胭脂", "胡萝", "胡琴", "胡同", "聪明",
		"耽误", "耽搁", "耷拉", "耳朵", "老爷", "老实", "老婆", "戏弄", "将军",
		"翻腾", "罗嗦", "罐头", "编辑", "结实", "红火", "累赘", "糨糊", "糊涂",
		"精神", "粮食", "簸箕", "篱笆", "算计", "算盘", "答应", "笤帚", "笑语",
		"笑话", "窟窿", "窝囊", "窗户", "稳当", "稀罕", "称呼", "秧歌", "秀气",
		"秀才", "福气", "祖宗", "砚台", "码头", "石榴", "石头", "石匠", "知识",
		"眼睛", "眯缝", "眨巴", "眉毛", "相声", "盘算", "白净", "痢疾", "痛快",
		"疟疾", "疙瘩", "疏忽", "畜生", "生意", "甘蔗", "琵琶", "琢磨", "琉璃",
		"玻璃", "玫瑰", "玄乎", "狐狸", "状元", "特务", "牲口", "牙碜", "牌楼",
		"爽快", "爱人", "热闹", "烧饼", "烟筒", "烂糊", "点心", "炊帚", "灯笼",
		"火候", "漂亮", "滑溜", "溜达", "温和", "清楚", "消息", "浪头", "活泼",
		"比方", "正经", "欺负", "模糊", "槟榔", "棺材", "棒槌", "棉花", "核桃",
		"栅栏", "柴火", "架势", "枕头", "枇杷", "机灵", "本事", "木头", "木匠",
		"朋友", "月饼", "月亮", "暖和", "明白", "时候", "新鲜", "故事", "收拾",
		"收成", "提防", "挖苦", "挑剔", "指甲", "指头", "拾掇", "拳头", "拨弄",
		"招牌", "招呼", "抬举", "护士", "折腾", "扫帚", "打量", "打算", "打扮",
		"打听", "打发", "扎实", "扁担", "戒指", "懒得", "意识", "意思", "悟性",
		"怪物", "思量", "怎么", "念头", "念叨", "别人", "快活", "忙活", "志气",
		"心思", "得罪", "张罗", "弟兄", "开通", "应酬", "庄稼", "干事", "帮手",
		"帐篷", "希罕", "师父", "师傅", "巴结", "巴掌", "差事", "工夫", "岁数",
		"屁股", "尾巴", "少爷", "小气", "小伙", "将就", "对头", "对付", "寡妇",
		"家伙", "客气", "实在", "官司", "学问", "字号", "嫁妆", "媳妇", "媒人",
		"婆家", "娘家", "委屈", "姑娘", "姐夫", "妯娌", "妥当", "妖精", "奴才",
		"女婿", "头发", "太阳", "大爷", "大方", "大意", "大夫", "多少", "多么",
		"外甥", "壮实", "地道", "地方", "在乎", "困难", "嘴巴", "嘱咐", "嘟囔",
		"嘀咕", "喜欢", "喇嘛", "喇叭", "商量", "唾沫", "哑巴", "哈欠", "哆嗦",
		"咳嗽", "和尚", "告诉", "告示", "含糊", "吓唬", "后头", "名字", "名堂",
		"合同", "吆喝", "叫唤", "口袋", "厚道", "厉害", "千斤", "包袱", "包涵",
		"匀称", "勤快", "动静", "动弹", "功夫", "力气", "前头", "刺猬", "刺激",
		"别扭", "利落", "利索", "利害", "分析", "出息", "凑合", "凉快", "冷战",
		"冤枉", "冒失", "养活", "关系", "先生", "兄弟", "便宜", "使唤", "佩服",
		"作坊", "体面", "位置", "似的", "伙计", "休息", "什么", "人家", "亲戚",
		"亲家", "交情", "云彩", "事情", "买卖", "主意", "丫头", "丧气", "两口",
		"东西", "东家", "世故", "不由", "下水", "下巴", "上头", "上司", "丈夫",
		"丈人", "一辈", "那个", "菩萨", "父亲", "母亲", "咕噜", "邋遢", "费用",
		"冤家", "甜头", "介绍", "荒唐", "大人", "泥鳅", "幸福", "熟悉", "计划",
		"扑腾", "蜡烛", "姥爷", "照顾", "喉咙", "吉他", "弄堂", "蚂蚱", "凤凰",
		"拖沓", "寒碜", "糟蹋", "倒腾", "报复", "逻辑", "盘缠", "喽啰", "牢骚",
		"咖喱", "扫把", "惦记",
	)
	// mustErhua 中的词无论词性都做儿化。
	mustErhua = wordSet(
		"小院儿", "胡同儿", "范儿", "老汉儿", "撒欢儿", "寻老礼儿", "妥妥儿",
		"媳妇儿", "老头儿",
	)
	// notErhua 中的词（或词末两字）不做儿化，儿字单独发音。
	notErhua = wordSet(
		"虐儿", "为儿", "护儿", "瞒儿", "救儿", "替儿", "有儿", "一儿", "我儿",
		"俺儿", "妻儿", "拐儿", "聋儿", "乞儿", "患儿", "幼儿", "孤儿", "婴儿",
		"婴幼儿", "连体儿", "脑瘫儿", "流浪儿", "体弱儿", "混血儿", "蜜雪儿",
		"舫儿", "祖儿", "美儿", "应采儿", "可儿", "侄儿", "孙儿", "侄孙儿", "女儿",
		"男儿", "红孩儿", "花儿", "虫儿", "马儿", "鸟儿", "猪儿", "猫儿", "狗儿",
		"少儿",
	)
)

func wordSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

func inSet(set map[string]struct{}, w string) bool {
	_, ok := set[w]
	return ok
}
