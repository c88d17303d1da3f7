package gateway

// helpText 斗地主帮助文案
const helpText = `斗地主游戏帮助：
1. 发送 '斗地主' 创建游戏
2. 发送 '加入' 加入游戏
3. 发送 '开始' 开始游戏
4. 叫分阶段：
   - 发送 '叫分 1/2/3' 叫分
   - 发送 '不叫' 不叫地主
5. 出牌阶段：
   - 发送 '出牌 牌1 牌2 ...' 出牌
   - 发送 '不出' 不出牌
   - 发送 '手牌' 查看自己的手牌
6. 其他命令：
   - 发送 '状态' 查看游戏状态
   - 发送 '结束游戏' 强制结束游戏

牌型说明：
- 单牌：任意单张牌
- 对子：两张相同点数的牌
- 三张：三张相同点数的牌
- 三带一：三张相同点数的牌 + 一张单牌
- 三带二：三张相同点数的牌 + 一对
- 顺子：五张或更多的连续单牌（不能包含2和王）
- 连对：三对或更多的连续对子（不能包含2和王）
- 飞机：两个或更多的连续三张（不能包含2和王）
- 炸弹：四张相同点数的牌
- 火箭：大小王

牌面表示：
- 花色：♠(黑桃) ♥(红桃) ♦(方块) ♣(梅花)
- 点数：3, 4, 5, 6, 7, 8, 9, 10, J, Q, K, A, 2
- 小王：joker
- 大王：JOKER

游戏规则：
- 三人游戏，一人为地主，两人为农民
- 地主先出牌，然后按顺序出牌
- 出牌必须大于上家出的牌
- 可以选择不出牌，但如果一轮中所有人都不出，则由最后出牌的玩家继续出牌
- 谁先出完所有牌，谁就获胜
- 如果地主获胜，地主得分为叫分的2倍，农民各扣叫分
- 如果农民获胜，农民各得叫分，地主扣叫分的2倍`
